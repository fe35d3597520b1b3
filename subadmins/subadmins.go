package subadmins

import (
	"context"
	"time"
)

// Grants is the per-feature grant record stored on a sub-admin account.
// The set of recognized features is fixed; anything else the backend sends
// is dropped on decode so a new backend flag can never leak a capability.
type Grants struct {
	UserManagement    bool `json:"userManagement"`
	FeesManagement    bool `json:"feesManagement"`
	Verification      bool `json:"verification"`
	DisputeManagement bool `json:"disputeManagement"`
	SubscriptionPlans bool `json:"subscriptionPlans"`
	Earnings          bool `json:"earnings"`
}

// AllGrants returns a grant record with every recognized feature enabled.
func AllGrants() Grants {
	return Grants{
		UserManagement:    true,
		FeesManagement:    true,
		Verification:      true,
		DisputeManagement: true,
		SubscriptionPlans: true,
		Earnings:          true,
	}
}

// Account is a delegated admin account owned by the backend. The console
// reads it during login lookup and never creates or mutates it.
type Account struct {
	ID          string    `json:"id,omitempty"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Password    string    `json:"password,omitempty"`
	Permissions Grants    `json:"permissions"`
	Status      string    `json:"status,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

type Repo interface {
	List(ctx context.Context) ([]Account, error)
}

// FindByIdentifier returns the first account whose email or display name
// equals identifier (case-sensitive exact match). The backend list is not
// guaranteed unique, so collisions resolve to the earliest entry.
func FindByIdentifier(accounts []Account, identifier string) *Account {
	if identifier == "" {
		return nil
	}
	for i := range accounts {
		if accounts[i].Email == identifier || accounts[i].DisplayName == identifier {
			return &accounts[i]
		}
	}
	return nil
}
