// Package session owns the client's authentication state: the bearer token,
// the cached profile, and the login/logout/refresh lifecycle around them.
//
// A single Manager instance is constructed at startup and handed to every
// consumer that needs authentication state. Consumers read state through
// Snapshot and mutate it only through Bootstrap, Login, Logout and
// RefreshUser. Operations are expected to be invoked one at a time (they
// are triggered by discrete user actions); the internal mutex guards field
// access, not operation interleaving.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/vanda-app/vanda-client/internal/client/api"
	"github.com/vanda-app/vanda-client/internal/client/keystore"
	"github.com/vanda-app/vanda-client/internal/client/models"
	"github.com/vanda-app/vanda-client/internal/logging"
)

// TokenKey is the fixed keystore key under which the bearer token is
// persisted. No other component reads or writes this key.
const TokenKey = "auth_token"

// Snapshot is a read-only view of the session state.
type Snapshot struct {
	// User is the cached profile, nil when not hydrated.
	User *models.Profile
	// Token is the bearer credential, "" when signed out.
	Token string
	// Initializing is true only while the one-time bootstrap runs.
	Initializing bool
	// AuthLoading is true while a login or logout is in flight; callers use
	// it to suppress duplicate submissions.
	AuthLoading bool
}

// SignedIn reports whether the session holds a credential. Token presence
// alone counts: during bootstrap and after a degraded login the profile may
// still be nil.
func (s Snapshot) SignedIn() bool {
	return s.Token != ""
}

// Manager is the single owner of the session. It persists the token through
// the keystore (write-through on login, delete-through on logout and on
// credential invalidation) and caches the profile in memory only.
type Manager struct {
	client api.Client
	store  keystore.Store
	log    logging.Logger

	mu           sync.RWMutex
	token        string
	user         *models.Profile
	initializing bool
	authLoading  bool

	bootstrapOnce sync.Once
}

// NewManager constructs an empty session. Initializing starts true and
// drops to false when Bootstrap completes.
func NewManager(client api.Client, store keystore.Store, log logging.Logger) *Manager {
	return &Manager{
		client:       client,
		store:        store,
		log:          log,
		initializing: true,
	}
}

// Snapshot returns the current state. The profile pointer is shared;
// callers must not mutate it.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		User:         m.user,
		Token:        m.token,
		Initializing: m.initializing,
		AuthLoading:  m.authLoading,
	}
}

// Bootstrap reconciles the persisted credential with a live profile check.
// It runs at most once per Manager; repeat calls return immediately.
//
// A persisted token is installed before it is validated, so consumers may
// briefly observe a token with no profile. If the profile fetch then fails
// for any reason the session is treated as invalid: the persisted token is
// deleted and the in-memory state cleared. Bootstrap itself never fails;
// every outcome lands in a usable signed-in or signed-out state.
func (m *Manager) Bootstrap(ctx context.Context) {
	m.bootstrapOnce.Do(func() {
		defer func() {
			m.mu.Lock()
			m.initializing = false
			m.mu.Unlock()
		}()

		stored, err := m.store.Get(ctx, TokenKey)
		if err != nil {
			if !errors.Is(err, keystore.ErrNotFound) {
				m.log.Warn(ctx, "reading stored credential failed", "error", err)
			}
			return
		}

		token := string(stored)
		m.mu.Lock()
		m.token = token
		m.mu.Unlock()

		profile, err := m.client.FetchProfile(ctx, token)
		if err != nil {
			// Invalid session: self-heal by clearing everything.
			m.log.Info(ctx, "stored credential rejected, clearing session", "error", err)
			if derr := m.store.Delete(ctx, TokenKey); derr != nil {
				m.log.Warn(ctx, "deleting stored credential failed", "error", derr)
			}
			m.mu.Lock()
			m.token = ""
			m.user = nil
			m.mu.Unlock()
			return
		}

		m.mu.Lock()
		m.user = profile
		m.mu.Unlock()
	})
}

// Login authenticates with the backend and hydrates the profile.
//
// On rejection the previous state is left untouched and the returned error
// carries the backend's displayable message (errors.Is(err, api.ErrAuthRejected)).
// On acceptance the credential is persisted before the profile fetch, so a
// fetch failure still leaves a durably stored credential; that outcome is a
// degraded success (token set, profile nil), not an error. Keystore write
// failures are logged and swallowed: authentication already succeeded.
func (m *Manager) Login(ctx context.Context, phone string, password []byte) error {
	m.setAuthLoading(true)
	defer m.setAuthLoading(false)

	token, err := m.client.Authenticate(ctx, phone, password)
	if err != nil {
		return err
	}

	if err := m.store.Set(ctx, TokenKey, []byte(token)); err != nil {
		m.log.Warn(ctx, "persisting credential failed", "error", err)
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	profile, err := m.client.FetchProfile(ctx, token)
	if err != nil {
		m.log.Warn(ctx, "profile fetch after login failed, continuing without profile", "error", err)
		return nil
	}

	m.mu.Lock()
	m.user = profile
	m.mu.Unlock()
	return nil
}

// Logout clears the session. It never fails: a keystore deletion error is
// logged and the in-memory state is cleared regardless, so the observable
// result is always signed-out. Calling it without a session is a no-op.
func (m *Manager) Logout(ctx context.Context) {
	m.setAuthLoading(true)
	defer m.setAuthLoading(false)

	if err := m.store.Delete(ctx, TokenKey); err != nil {
		m.log.Warn(ctx, "deleting stored credential failed", "error", err)
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
}

// RefreshUser refetches the profile with the current credential. Without a
// credential it does nothing. On failure the previous profile is kept: a
// stale profile beats a blank screen on a transient error, and a refresh
// must never log the user out.
func (m *Manager) RefreshUser(ctx context.Context) {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()

	if token == "" {
		return
	}

	profile, err := m.client.FetchProfile(ctx, token)
	if err != nil {
		m.log.Warn(ctx, "profile refresh failed, keeping cached profile", "error", err)
		return
	}

	m.mu.Lock()
	m.user = profile
	m.mu.Unlock()
}

func (m *Manager) setAuthLoading(v bool) {
	m.mu.Lock()
	m.authLoading = v
	m.mu.Unlock()
}
