// Package auth turns an (identifier, secret) pair into a persisted console
// session, or rejects it.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/Pythra/qiimeet-admin/session"
	"github.com/Pythra/qiimeet-admin/subadmins"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Fixed credentials, reproduced verbatim from the deployed console. Changing
// any of these changes observable login behavior for every operator.
// The shared fallback secret is accepted for any sub-admin account in
// addition to its stored password; it is a known reduced-security behavior,
// kept deliberately rather than silently dropped.
const (
	superAdminUsername = "admin"
	superAdminPassword = "admin123"

	subAdminFallbackSecret = "subadmin123"
)

// MatchKind tags the outcome of a credential check.
type MatchKind int

const (
	NoMatch MatchKind = iota
	SuperAdminMatch
	SubAdminMatch
)

// Match is the classified result of a credential check. Account is set only
// for SubAdminMatch.
type Match struct {
	Kind    MatchKind
	Account *subadmins.Account
}

// Repos holds the service's dependencies.
type Repos struct {
	Directory subadmins.Repo // read-only sub-admin directory (backend owned)
	Sessions  session.Store  // durable session record
}

type Service struct {
	repos Repos
}

func NewService(repos Repos) (*Service, error) {
	if repos.Directory == nil {
		return nil, errors.New("[NewService] Directory repo is required")
	}
	if repos.Sessions == nil {
		return nil, errors.New("[NewService] Sessions store is required")
	}
	return &Service{repos: repos}, nil
}

// Match classifies credentials without touching session state. Ordered,
// first match wins:
//
//  1. The fixed super-admin pair, checked before any network call.
//  2. The sub-admin directory, matched by exact email or display name in
//     list order; the secret must equal the account's stored password or
//     the shared fallback secret.
//
// A directory read failure returns an error wrapping ErrLookupUnavailable.
// Credentials that match nothing return Match{Kind: NoMatch} with no error.
func (s *Service) Match(ctx context.Context, identifier, secret string) (Match, error) {
	if identifier == superAdminUsername && secret == superAdminPassword {
		return Match{Kind: SuperAdminMatch}, nil
	}

	accounts, err := s.repos.Directory.List(ctx)
	if err != nil {
		return Match{}, fmt.Errorf("%w: %v", ErrLookupUnavailable, err)
	}

	account := subadmins.FindByIdentifier(accounts, identifier)
	if account == nil {
		return Match{Kind: NoMatch}, nil
	}
	if !secretMatches(secret, account.Password) && secret != subAdminFallbackSecret {
		return Match{Kind: NoMatch}, nil
	}
	return Match{Kind: SubAdminMatch, Account: account}, nil
}

// Login authenticates and persists the resulting session. Nothing is
// mutated on failure.
func (s *Service) Login(ctx context.Context, identifier, secret string) (*session.Session, error) {
	match, err := s.Match(ctx, identifier, secret)
	if err != nil {
		return nil, err
	}

	var sess *session.Session
	switch match.Kind {
	case SuperAdminMatch:
		grants := subadmins.AllGrants()
		sess = &session.Session{
			Username:    superAdminUsername,
			Role:        session.RoleSuperAdmin,
			Permissions: &grants,
		}
	case SubAdminMatch:
		account := match.Account
		username := account.DisplayName
		if username == "" {
			username = account.Email
		}
		grants := account.Permissions
		sess = &session.Session{
			Username:    username,
			Email:       account.Email,
			ID:          account.ID,
			Role:        session.RoleSubAdmin,
			Permissions: &grants,
		}
	default:
		return nil, ErrInvalidCredentials
	}

	if err := s.repos.Sessions.Save(sess); err != nil {
		return nil, errors.Wrap(err, "[Login] save session")
	}
	return sess, nil
}

// Current returns the restored session, or nil when logged out.
func (s *Service) Current() (*session.Session, error) {
	return s.repos.Sessions.Restore()
}

// Signout destroys the persisted session.
func (s *Service) Signout() error {
	return s.repos.Sessions.Clear()
}

// secretMatches compares the supplied secret against an account's stored
// password. Directories may store either a plaintext password or a bcrypt
// hash; an empty stored password matches nothing (the account then relies
// on the shared fallback secret).
func secretMatches(secret, stored string) bool {
	if stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(secret)) == nil
	}
	return stored == secret
}
