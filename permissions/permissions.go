// Package permissions derives what the current session may see. Resolution
// is a pure function of the session; nothing here performs I/O or caches a
// decision across session changes.
package permissions

import (
	"github.com/Pythra/qiimeet-admin/session"
	"github.com/Pythra/qiimeet-admin/subadmins"
)

// Tab identifies one independently gated section of the console.
type Tab string

const (
	TabDashboard        Tab = "dashboard"
	TabUsers            Tab = "users"
	TabFees             Tab = "fees"
	TabVerification     Tab = "verification"
	TabAdmin            Tab = "admin"
	TabDisputes         Tab = "disputes"
	TabDeletionRequests Tab = "deletion_requests"
	TabSubscription     Tab = "subscription"
	TabEarnings         Tab = "earnings"
	TabSettings         Tab = "settings"

	// TabSignout is a menu action, not a gated screen.
	TabSignout Tab = "signout"
)

// Tabs is the fixed, ordered set of gated tabs. Order is significant: the
// menu and the sub-admin redirect policy both preserve it.
var Tabs = []Tab{
	TabDashboard,
	TabUsers,
	TabFees,
	TabVerification,
	TabAdmin,
	TabDisputes,
	TabDeletionRequests,
	TabSubscription,
	TabEarnings,
	TabSettings,
}

// Title returns the header title shown for a tab.
func (t Tab) Title() string {
	switch t {
	case TabUsers:
		return "User Management"
	case TabFees:
		return "Fees Management"
	case TabSubscription:
		return "Subscription Plans"
	case TabEarnings:
		return "Earnings"
	case TabDisputes:
		return "Dispute Management"
	case TabSettings:
		return "Settings"
	case TabDeletionRequests:
		return "Deletion Requests"
	default:
		return "Admin Dashboard"
	}
}

// CapabilityMap maps every gated tab to whether the session may see it.
type CapabilityMap map[Tab]bool

// Allows reports whether tab is visible. Tabs outside the fixed enumeration
// resolve to false, never to an error.
func (c CapabilityMap) Allows(tab Tab) bool {
	return c[tab]
}

// Resolve derives the capability map for a session.
//
//   - nil session: every entry false.
//   - super_admin: every entry true, regardless of stored grants.
//   - sub_admin: dashboard, admin, settings and deletion_requests are false
//     unconditionally; the remaining tabs mirror the account's grant record,
//     absent grants defaulting to false.
func Resolve(s *session.Session) CapabilityMap {
	caps := make(CapabilityMap, len(Tabs))
	for _, tab := range Tabs {
		caps[tab] = false
	}
	if s == nil {
		return caps
	}

	switch s.Role {
	case session.RoleSuperAdmin:
		for _, tab := range Tabs {
			caps[tab] = true
		}
	case session.RoleSubAdmin:
		grants := subadmins.Grants{}
		if s.Permissions != nil {
			grants = *s.Permissions
		}
		caps[TabUsers] = grants.UserManagement
		caps[TabFees] = grants.FeesManagement
		caps[TabVerification] = grants.Verification
		caps[TabDisputes] = grants.DisputeManagement
		caps[TabSubscription] = grants.SubscriptionPlans
		caps[TabEarnings] = grants.Earnings
	}
	return caps
}

// Permitted returns the visible gated tabs in fixed order.
func Permitted(caps CapabilityMap) []Tab {
	permitted := make([]Tab, 0, len(Tabs))
	for _, tab := range Tabs {
		if caps.Allows(tab) {
			permitted = append(permitted, tab)
		}
	}
	return permitted
}
