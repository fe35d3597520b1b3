package permissions

import "github.com/Pythra/qiimeet-admin/session"

// MenuItem is one entry of the console sidebar.
type MenuItem struct {
	ID    Tab    `json:"id"`
	Label string `json:"label"`
}

// Menu is the fixed, ordered sidebar definition. Sign out is last and is
// never gated: every authenticated session must be able to sign out.
var Menu = []MenuItem{
	{ID: TabDashboard, Label: "Dashboard"},
	{ID: TabUsers, Label: "User Management"},
	{ID: TabFees, Label: "Fees Management"},
	{ID: TabVerification, Label: "Verification"},
	{ID: TabAdmin, Label: "Admin Management"},
	{ID: TabDisputes, Label: "Dispute Management"},
	{ID: TabDeletionRequests, Label: "Deletion Requests"},
	{ID: TabSubscription, Label: "Subscription Plans"},
	{ID: TabEarnings, Label: "Earnings"},
	{ID: TabSettings, Label: "Settings"},
	{ID: TabSignout, Label: "Sign out"},
}

// VisibleMenu filters Menu down to the entries the session may see,
// preserving order. The signout entry is always kept.
func VisibleMenu(caps CapabilityMap) []MenuItem {
	visible := make([]MenuItem, 0, len(Menu))
	for _, item := range Menu {
		if item.ID == TabSignout || caps.Allows(item.ID) {
			visible = append(visible, item)
		}
	}
	return visible
}

// ActiveTab applies the dashboard redirect policy: a sub-admin can never see
// the dashboard, so an active dashboard tab moves to the first permitted tab
// in menu order. With no permitted tabs at all there is no redirect target
// and the empty Tab is returned; the screen area renders nothing.
func ActiveTab(current Tab, s *session.Session, caps CapabilityMap) Tab {
	if s == nil || s.Role != session.RoleSubAdmin || current != TabDashboard {
		return current
	}
	permitted := Permitted(caps)
	if len(permitted) == 0 {
		return ""
	}
	return permitted[0]
}
