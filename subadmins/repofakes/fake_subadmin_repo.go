package repofakes

import (
	"context"
	"sync"

	"github.com/Pythra/qiimeet-admin/subadmins"
	"github.com/google/uuid"
)

var _ subadmins.Repo = (*FakeSubAdminRepo)(nil)

// FakeSubAdminRepo is an in-memory directory used in tests. List order is
// insertion order, matching the backend's first-match-wins semantics.
type FakeSubAdminRepo struct {
	lock     sync.RWMutex
	accounts []subadmins.Account
	listErr  error
}

func NewFakeSubAdminRepo() *FakeSubAdminRepo {
	return &FakeSubAdminRepo{}
}

func (r *FakeSubAdminRepo) Add(account subadmins.Account) subadmins.Account {
	r.lock.Lock()
	defer r.lock.Unlock()

	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	r.accounts = append(r.accounts, account)
	return account
}

// FailListWith makes every subsequent List call return err.
func (r *FakeSubAdminRepo) FailListWith(err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.listErr = err
}

func (r *FakeSubAdminRepo) List(_ context.Context) ([]subadmins.Account, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]subadmins.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}
