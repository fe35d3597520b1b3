package permissions_test

import (
	"testing"

	"github.com/Pythra/qiimeet-admin/permissions"
	"github.com/Pythra/qiimeet-admin/subadmins"
	"github.com/stretchr/testify/require"
)

func menuIDs(items []permissions.MenuItem) []permissions.Tab {
	ids := make([]permissions.Tab, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestVisibleMenuSuperAdminSeesEverything(t *testing.T) {
	caps := permissions.Resolve(superAdminSession())

	visible := permissions.VisibleMenu(caps)
	require.Equal(t, menuIDs(permissions.Menu), menuIDs(visible))
}

func TestVisibleMenuSubAdminUsersOnly(t *testing.T) {
	grants := subadmins.Grants{UserManagement: true}
	caps := permissions.Resolve(subAdminSession(&grants))

	visible := permissions.VisibleMenu(caps)
	require.Equal(t, []permissions.Tab{
		permissions.TabUsers,
		permissions.TabSignout,
	}, menuIDs(visible))
}

func TestVisibleMenuAlwaysKeepsSignout(t *testing.T) {
	caps := permissions.Resolve(subAdminSession(nil))

	visible := permissions.VisibleMenu(caps)
	require.Equal(t, []permissions.Tab{permissions.TabSignout}, menuIDs(visible))
}

func TestVisibleMenuNilSessionKeepsSignoutOnly(t *testing.T) {
	caps := permissions.Resolve(nil)

	visible := permissions.VisibleMenu(caps)
	require.Equal(t, []permissions.Tab{permissions.TabSignout}, menuIDs(visible))
}

func TestActiveTabRedirectsSubAdminOffDashboard(t *testing.T) {
	grants := subadmins.Grants{FeesManagement: true, Earnings: true}
	sess := subAdminSession(&grants)
	caps := permissions.Resolve(sess)

	// First permitted tab in fixed menu order wins.
	active := permissions.ActiveTab(permissions.TabDashboard, sess, caps)
	require.Equal(t, permissions.TabFees, active)
}

func TestActiveTabWithoutGrantsHasNoTarget(t *testing.T) {
	sess := subAdminSession(nil)
	caps := permissions.Resolve(sess)

	active := permissions.ActiveTab(permissions.TabDashboard, sess, caps)
	require.Equal(t, permissions.Tab(""), active)
}

func TestActiveTabSuperAdminKeepsDashboard(t *testing.T) {
	sess := superAdminSession()
	caps := permissions.Resolve(sess)

	active := permissions.ActiveTab(permissions.TabDashboard, sess, caps)
	require.Equal(t, permissions.TabDashboard, active)
}

func TestActiveTabNonDashboardUnchanged(t *testing.T) {
	grants := subadmins.Grants{Earnings: true}
	sess := subAdminSession(&grants)
	caps := permissions.Resolve(sess)

	active := permissions.ActiveTab(permissions.TabEarnings, sess, caps)
	require.Equal(t, permissions.TabEarnings, active)
}
