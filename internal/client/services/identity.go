// Package services contains the application services behind the dashboard
// views: the identity manager (registration, authentication, session
// lifecycle, account deletion) and the records service feeding the data
// table.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dkoval85/dashterm/internal/client/models"
	"github.com/dkoval85/dashterm/internal/client/stores"
	"github.com/dkoval85/dashterm/internal/logging"
)

// IdentityService defines the identity and session lifecycle operations
// the views invoke.
//
// Contract:
//   - Register: validate, enforce email uniqueness, create the account,
//     auto-login.
//   - Login: authenticate a credential pair; unknown email and wrong secret
//     are indistinguishable to the caller.
//   - Logout: clear the session; idempotent.
//   - DeleteAccount: remove the logged-in account, then always log out.
//   - CurrentSession / ValidateSession: read the cached claim, without and
//     with re-validation against the account store.
type IdentityService interface {
	Register(ctx context.Context, name, email, secret, confirm string) (models.SessionIdentity, error)
	Login(ctx context.Context, email, secret string) (models.SessionIdentity, error)
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	CurrentSession(ctx context.Context) (models.SessionIdentity, bool)
	ValidateSession(ctx context.Context) (models.SessionIdentity, bool)
}

// Identity orchestrates the account and session stores. It is the only
// writer of either store; views read session state but never mutate it.
//
// All operations run to completion on the calling goroutine. The simulated
// network latency inside Register and Login is the only asynchronous-feeling
// boundary and is not cancellable once an operation has started.
type Identity struct {
	accounts stores.AccountStore
	sessions stores.SessionStore
	log      logging.Logger

	// latency simulates a backend round-trip. Zero disables it.
	latency time.Duration

	// seams for tests
	newID func() string
	sleep func(time.Duration)
}

var _ IdentityService = (*Identity)(nil)

func NewIdentity(accounts stores.AccountStore, sessions stores.SessionStore, log logging.Logger, latency time.Duration) *Identity {
	return &Identity{
		accounts: accounts,
		sessions: sessions,
		log:      log,
		latency:  latency,
		newID:    uuid.NewString,
		sleep:    time.Sleep,
	}
}

func (s *Identity) simulateLatency() {
	if s.latency > 0 {
		s.sleep(s.latency)
	}
}

// Register creates a new account and logs it in.
//
// Input is validated before any store access; a *ValidationError carries one
// message per offending field. Email uniqueness is a case-sensitive exact
// match against the existing collection. On success the account is durably
// saved first and only then the session is set, so an interruption between
// the two steps leaves a registered-but-logged-out account rather than a
// session pointing at nothing.
func (s *Identity) Register(ctx context.Context, name, email, secret, confirm string) (models.SessionIdentity, error) {
	if verr := validateRegistration(name, email, secret, confirm); verr != nil {
		return models.SessionIdentity{}, verr
	}

	s.simulateLatency()

	accounts := s.accounts.List(ctx)
	for _, a := range accounts {
		if a.Email == email {
			return models.SessionIdentity{}, ErrDuplicateEmail
		}
	}

	account := models.Account{
		ID:       s.newID(),
		Name:     name,
		Email:    email,
		Password: secret,
	}

	if err := s.accounts.Save(ctx, append(accounts, account)); err != nil {
		return models.SessionIdentity{}, err
	}

	id := account.Identity()
	if err := s.sessions.Set(ctx, id); err != nil {
		// The account exists; the user just is not logged in.
		return models.SessionIdentity{}, err
	}

	s.log.Info(ctx, "account registered", "email", id.Email)
	return id, nil
}

// Login authenticates against the account store. An unknown email and a
// wrong password both come back as ErrInvalidCredentials; callers cannot
// tell which field was wrong. No shape validation happens here: a malformed
// email simply matches nothing.
func (s *Identity) Login(ctx context.Context, email, secret string) (models.SessionIdentity, error) {
	s.simulateLatency()

	for _, a := range s.accounts.List(ctx) {
		if a.Email != email {
			continue
		}
		if a.Password != secret {
			return models.SessionIdentity{}, ErrInvalidCredentials
		}

		id := a.Identity()
		if err := s.sessions.Set(ctx, id); err != nil {
			return models.SessionIdentity{}, err
		}

		s.log.Info(ctx, "login successful", "email", id.Email)
		return id, nil
	}

	return models.SessionIdentity{}, ErrInvalidCredentials
}

// Logout unconditionally clears the session. Logging out with no active
// session is a no-op success.
func (s *Identity) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// DeleteAccount removes every account matching the current session's email
// (at most one, by the uniqueness invariant) and then clears the session.
// The session is cleared even when no matching account was found, so the
// user always ends up logged out after requesting deletion.
func (s *Identity) DeleteAccount(ctx context.Context) error {
	id, ok := s.sessions.Get(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	accounts := s.accounts.List(ctx)
	kept := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Email != id.Email {
			kept = append(kept, a)
		}
	}
	saveErr := s.accounts.Save(ctx, kept)

	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	if saveErr != nil {
		return saveErr
	}

	s.log.Info(ctx, "account deleted", "email", id.Email)
	return nil
}

// CurrentSession returns the cached session claim without re-validating it.
func (s *Identity) CurrentSession(ctx context.Context) (models.SessionIdentity, bool) {
	return s.sessions.Get(ctx)
}

// ValidateSession re-checks the cached claim against the account store and
// clears the session when its backing account no longer exists (deleted
// elsewhere while this claim was held). Returns the surviving identity, if
// any. Meant to be called when the protected view mounts.
func (s *Identity) ValidateSession(ctx context.Context) (models.SessionIdentity, bool) {
	id, ok := s.sessions.Get(ctx)
	if !ok {
		return models.SessionIdentity{}, false
	}

	for _, a := range s.accounts.List(ctx) {
		if a.Email == id.Email {
			return id, true
		}
	}

	s.log.Warn(ctx, "session refers to a missing account, clearing", "email", id.Email)
	if err := s.sessions.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear stale session", "error", err)
	}
	return models.SessionIdentity{}, false
}
