package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Pythra/qiimeet-admin/auth"
	"github.com/Pythra/qiimeet-admin/session"
	"github.com/rs/zerolog/log"
)

// Messages shown by the login form. The credential failure message is the
// same whether the identifier was unknown or the secret was wrong.
const (
	invalidCredentialsMessage = "Invalid credentials. Use admin/admin123 for super admin or your subadmin credentials."
	loginFailedMessage        = "Login failed. Please try again."
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	User    *session.Session `json:"user,omitempty"`
}

// LoginHandler authenticates the submitted credentials and persists the
// resulting session.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, "invalid_request", "Failed to parse login body", http.StatusBadRequest)
			return
		}

		sess, err := s.auth.Login(r.Context(), req.Username, req.Password)
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, loginResponse{Message: invalidCredentialsMessage})
			return
		case errors.Is(err, auth.ErrLookupUnavailable):
			log.Err(err).Msg("Sub-admin lookup unavailable")
			writeJSON(w, http.StatusBadGateway, loginResponse{Message: loginFailedMessage})
			return
		case err != nil:
			log.Err(err).Msg("Login failed")
			writeJSONError(w, "server_error", "could not complete login", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{Success: true, User: sess})
	}
}

// SessionHandler restores the persisted session, if any.
func (s *Server) SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.auth.Current()
		if err != nil {
			log.Err(err).Msg("Session restore failed")
			writeJSONError(w, "server_error", "could not read session", http.StatusInternalServerError)
			return
		}
		if sess == nil {
			writeJSONError(w, "unauthorized", "not signed in", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, loginResponse{Success: true, User: sess})
	}
}

// SignoutHandler destroys the persisted session. Signing out is never gated.
func (s *Server) SignoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.auth.Signout(); err != nil {
			log.Err(err).Msg("Signout failed")
			writeJSONError(w, "server_error", "could not sign out", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, loginResponse{Success: true})
	}
}
