package permissions_test

import (
	"testing"

	"github.com/Pythra/qiimeet-admin/permissions"
	"github.com/Pythra/qiimeet-admin/session"
	"github.com/Pythra/qiimeet-admin/subadmins"
	"github.com/stretchr/testify/require"
)

func superAdminSession() *session.Session {
	return &session.Session{
		Username: "admin",
		Role:     session.RoleSuperAdmin,
	}
}

func subAdminSession(grants *subadmins.Grants) *session.Session {
	return &session.Session{
		Username:    "Jane",
		Email:       "jane@qiimeet.com",
		ID:          "sa-1",
		Role:        session.RoleSubAdmin,
		Permissions: grants,
	}
}

func TestResolveNilSessionIsAllFalse(t *testing.T) {
	caps := permissions.Resolve(nil)

	require.Len(t, caps, len(permissions.Tabs))
	for _, tab := range permissions.Tabs {
		require.False(t, caps.Allows(tab), "tab %s", tab)
	}
}

func TestResolveSuperAdminIsAllTrue(t *testing.T) {
	caps := permissions.Resolve(superAdminSession())

	for _, tab := range permissions.Tabs {
		require.True(t, caps.Allows(tab), "tab %s", tab)
	}
}

func TestResolveSuperAdminIgnoresStoredGrants(t *testing.T) {
	// A super admin with an empty grant record still sees everything.
	sess := superAdminSession()
	sess.Permissions = &subadmins.Grants{}

	caps := permissions.Resolve(sess)
	for _, tab := range permissions.Tabs {
		require.True(t, caps.Allows(tab), "tab %s", tab)
	}
}

func TestResolveSubAdminReservedTabsAlwaysDenied(t *testing.T) {
	grants := subadmins.AllGrants()
	caps := permissions.Resolve(subAdminSession(&grants))

	require.False(t, caps.Allows(permissions.TabDashboard))
	require.False(t, caps.Allows(permissions.TabAdmin))
	require.False(t, caps.Allows(permissions.TabSettings))
	require.False(t, caps.Allows(permissions.TabDeletionRequests))

	require.True(t, caps.Allows(permissions.TabUsers))
	require.True(t, caps.Allows(permissions.TabFees))
	require.True(t, caps.Allows(permissions.TabVerification))
	require.True(t, caps.Allows(permissions.TabDisputes))
	require.True(t, caps.Allows(permissions.TabSubscription))
	require.True(t, caps.Allows(permissions.TabEarnings))
}

func TestResolveSubAdminMirrorsGrantRecord(t *testing.T) {
	tests := []struct {
		name   string
		grants subadmins.Grants
		tab    permissions.Tab
	}{
		{"userManagement", subadmins.Grants{UserManagement: true}, permissions.TabUsers},
		{"feesManagement", subadmins.Grants{FeesManagement: true}, permissions.TabFees},
		{"verification", subadmins.Grants{Verification: true}, permissions.TabVerification},
		{"disputeManagement", subadmins.Grants{DisputeManagement: true}, permissions.TabDisputes},
		{"subscriptionPlans", subadmins.Grants{SubscriptionPlans: true}, permissions.TabSubscription},
		{"earnings", subadmins.Grants{Earnings: true}, permissions.TabEarnings},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			caps := permissions.Resolve(subAdminSession(&tc.grants))
			for _, tab := range permissions.Tabs {
				require.Equal(t, tab == tc.tab, caps.Allows(tab), "tab %s", tab)
			}
		})
	}
}

func TestResolveSubAdminWithoutGrantsIsAllFalse(t *testing.T) {
	caps := permissions.Resolve(subAdminSession(nil))

	for _, tab := range permissions.Tabs {
		require.False(t, caps.Allows(tab), "tab %s", tab)
	}
}

func TestResolveIsPure(t *testing.T) {
	grants := subadmins.Grants{UserManagement: true, Earnings: true}
	sess := subAdminSession(&grants)

	first := permissions.Resolve(sess)
	second := permissions.Resolve(sess)
	require.Equal(t, first, second)
}

func TestCapabilityMapDeniesUnknownTab(t *testing.T) {
	caps := permissions.Resolve(superAdminSession())

	require.False(t, caps.Allows(permissions.Tab("reports")))
	require.False(t, caps.Allows(permissions.Tab("")))
}

func TestPermittedPreservesFixedOrder(t *testing.T) {
	grants := subadmins.Grants{Earnings: true, UserManagement: true, FeesManagement: true}
	caps := permissions.Resolve(subAdminSession(&grants))

	permitted := permissions.Permitted(caps)
	require.Equal(t, []permissions.Tab{
		permissions.TabUsers,
		permissions.TabFees,
		permissions.TabEarnings,
	}, permitted)
}
