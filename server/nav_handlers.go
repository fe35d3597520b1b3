package server

import (
	"net/http"

	"github.com/Pythra/qiimeet-admin/permissions"
)

type navigationResponse struct {
	Menu      []permissions.MenuItem `json:"menu"`
	ActiveTab permissions.Tab        `json:"activeTab"`
}

// NavigationHandler returns the ordered menu entries visible to the current
// session and the resolved active tab. The sidebar order is fixed; signout
// is always present. A sub-admin whose active tab is the dashboard is
// redirected to their first permitted tab; with no permitted tabs the
// active tab is empty and the screen area renders nothing.
func (s *Server) NavigationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())
		caps := permissions.Resolve(sess)

		active := permissions.Tab(r.URL.Query().Get("active"))
		if active == "" {
			active = permissions.TabDashboard
		}

		writeJSON(w, http.StatusOK, navigationResponse{
			Menu:      permissions.VisibleMenu(caps),
			ActiveTab: permissions.ActiveTab(active, sess, caps),
		})
	}
}
