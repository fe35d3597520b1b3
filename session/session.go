package session

import (
	"fmt"

	"github.com/Pythra/qiimeet-admin/subadmins"
)

// StorageKey is the fixed name the persisted session record is stored under.
// It must stay in sync with the browser console's localStorage key.
const StorageKey = "adminUser"

// Role identifies the privilege level of the authenticated operator.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleSubAdmin   Role = "sub_admin"
)

// Session is the authenticated identity for the current console. Exactly one
// session is active at a time; it is created by the authenticator, persisted
// by a Store, and destroyed on sign-out.
type Session struct {
	Username    string            `json:"username"`
	Email       string            `json:"email,omitempty"` // sub_admin only
	ID          string            `json:"id,omitempty"`    // sub_admin only
	Role        Role              `json:"role"`
	Permissions *subadmins.Grants `json:"permissions,omitempty"` // ignored for super_admin
}

// Validate reports whether the record carries the fields every restored
// session must have. Stores treat an invalid record as absent.
func (s *Session) Validate() error {
	if s.Username == "" {
		return fmt.Errorf("session username is required")
	}
	if s.Role != RoleSuperAdmin && s.Role != RoleSubAdmin {
		return fmt.Errorf("unknown session role %q", s.Role)
	}
	return nil
}
