package server

import (
	"context"
	"net/http"

	"github.com/Pythra/qiimeet-admin/session"
	"github.com/rs/zerolog/log"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the restored session for the request.
const ContextKeySession ContextKey = "session"

// RequireSession restores the persisted session before a protected handler
// runs. Restoration happens per request: a session or permission change is
// picked up on the next navigation, never served from a stale copy. A
// corrupted record has already been discarded by the store, so the operator
// simply appears logged out.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess, err := s.sessions.Restore()
			if err != nil {
				log.Err(err).Msg("Session restore failed")
				writeJSONError(w, "server_error", "could not read session", http.StatusInternalServerError)
				return
			}
			if sess == nil {
				writeJSONError(w, "unauthorized", "not signed in", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, sess)
			next(w, r.WithContext(ctx))
		}
	}
}

// sessionFromContext returns the session injected by RequireSession, or nil.
func sessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(ContextKeySession).(*session.Session)
	return sess
}
