package server

import (
	"net/http"

	"github.com/Pythra/qiimeet-admin/permissions"
)

const accessDeniedMessage = "You don't have permission to access this section."

type tabResponse struct {
	Tab   permissions.Tab `json:"tab"`
	Title string          `json:"title"`
}

// TabHandler is the route gate for a single tab. The capability map is
// recomputed from the restored session on every request, so a permission
// edit takes effect on the next navigation. A tab id outside the fixed
// enumeration is denied, never an error.
func (s *Server) TabHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tab := permissions.Tab(r.PathValue("tab"))
		sess := sessionFromContext(r.Context())

		caps := permissions.Resolve(sess)
		if !caps.Allows(tab) {
			writeJSON(w, http.StatusForbidden, map[string]string{
				"error":   "access_denied",
				"message": accessDeniedMessage,
			})
			return
		}

		writeJSON(w, http.StatusOK, tabResponse{Tab: tab, Title: tab.Title()})
	}
}
