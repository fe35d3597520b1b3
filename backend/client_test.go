package backend_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Pythra/qiimeet-admin/backend"
	"github.com/Pythra/qiimeet-admin/subadmins"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *backend.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return backend.New(server.URL, backend.WithHTTPClient(server.Client()))
}

func TestListSubAdmins(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/sub-admins", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"success": true,
			"subAdmins": [
				{
					"id": "sa-1",
					"email": "a@b.com",
					"displayName": "Jane Doe",
					"permissions": {"userManagement": true, "feesManagement": false},
					"status": "active"
				}
			]
		}`)
	}))

	accounts, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	require.Equal(t, "a@b.com", accounts[0].Email)
	require.Equal(t, "Jane Doe", accounts[0].DisplayName)
	require.True(t, accounts[0].Permissions.UserManagement)
	require.False(t, accounts[0].Permissions.FeesManagement)
}

func TestListIgnoresUnrecognizedGrantNames(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"success": true,
			"subAdmins": [
				{"email": "a@b.com", "permissions": {"dashboard": true, "settings": true}}
			]
		}`)
	}))

	accounts, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	// A backend flag outside the fixed feature set grants nothing.
	require.Equal(t, subadmins.Grants{}, accounts[0].Permissions)
}

func TestListBackendReportsFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": false}`)
	}))

	_, err := client.List(context.Background())
	require.ErrorIs(t, err, backend.ErrUnavailable)
}

func TestListNon2xxStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.List(context.Background())
	require.ErrorIs(t, err, backend.ErrUnavailable)
}

func TestListMalformedResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	}))

	_, err := client.List(context.Background())
	require.ErrorIs(t, err, backend.ErrUnavailable)
}

func TestListBackendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := backend.New(server.URL)

	_, err := client.List(context.Background())
	require.ErrorIs(t, err, backend.ErrUnavailable)
}

func TestDashboardStats(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/dashboard/stats", r.URL.Path)
		fmt.Fprint(w, `{"success": true, "stats": {"users": {"total": 120, "active": 100, "blocked": 3}}}`)
	}))

	stats, err := client.DashboardStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 120, stats.Users.Total)
	require.Equal(t, 100, stats.Users.Active)
	require.Equal(t, 3, stats.Users.Blocked)
}

func TestUsersPagination(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/users", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "50", r.URL.Query().Get("limit"))
		fmt.Fprint(w, `{"success": true, "users": [{"id": "u1"}, {"id": "u2"}]}`)
	}))

	users, err := client.Users(context.Background(), 2, 50)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestTransactions(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/transactions", r.URL.Path)
		require.Equal(t, "1", r.URL.Query().Get("page"))
		fmt.Fprint(w, `{"success": true, "transactions": [{"id": "t1"}]}`)
	}))

	transactions, err := client.Transactions(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
}
