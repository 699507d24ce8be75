// Package session owns the authenticated-user identity, the bearer
// token, and the onboarding flag. It is the only writer of the
// transport's token: every transition that changes the manager's token
// changes the client's token in the same operation, so the two can
// never drift apart.
package session

import (
	"context"
	"sync"

	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/backend"
	"github.com/deadtood/appcore/domain"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Session is the snapshot handed to the UI layer.
type Session struct {
	User                  *domain.User
	Token                 string
	IsLoading             bool
	IsOnboardingCompleted bool
}

type Manager struct {
	store  Store
	client *apiclient.Client
	auth   backend.Auth

	mu             sync.RWMutex
	user           *domain.User
	token          string
	loading        bool
	onboardingDone bool
}

// New creates a session manager in the loading state; call Load to
// resolve the persisted session.
func New(store Store, client *apiclient.Client, auth backend.Auth) (*Manager, error) {
	if store == nil {
		return nil, errors.New("[session.New] store is required")
	}
	if client == nil {
		return nil, errors.New("[session.New] client is required")
	}
	if auth == nil {
		return nil, errors.New("[session.New] auth service is required")
	}

	return &Manager{
		store:   store,
		client:  client,
		auth:    auth,
		loading: true,
	}, nil
}

// Load resolves the persisted session: it restores the onboarding
// flag, then validates any persisted token against the backend. A
// rejected token is cleared everywhere and the session stays
// anonymous; that failure is swallowed because nothing is awaiting it
// at startup. Load always ends the loading state.
func (m *Manager) Load(ctx context.Context) error {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	if done, err := m.store.OnboardingCompleted(); err != nil {
		log.Warn().Err(err).Msg("session: failed to read onboarding flag")
	} else {
		m.mu.Lock()
		m.onboardingDone = done
		m.mu.Unlock()
	}

	token, err := m.store.Token()
	if err != nil {
		log.Warn().Err(err).Msg("session: failed to read persisted token")
		return nil
	}
	if token == "" {
		return nil
	}

	m.client.SetToken(token)
	user, err := m.auth.GetCurrentUser(ctx)
	if err != nil {
		// Token rejected: clear it everywhere and stay anonymous.
		log.Warn().Err(err).Msg("session: persisted token rejected")
		if clearErr := m.store.ClearToken(); clearErr != nil {
			log.Warn().Err(clearErr).Msg("session: failed to clear persisted token")
		}
		m.client.ClearToken()
		return nil
	}

	m.mu.Lock()
	m.user = &user
	m.token = token
	m.mu.Unlock()
	log.Info().Str("email", user.Email).Msg("session: restored from persisted token")
	return nil
}

// Login authenticates and persists the resulting token. On failure
// the error is propagated unchanged and the session stays anonymous.
func (m *Manager) Login(ctx context.Context, credentials domain.LoginRequest) error {
	resp, err := m.auth.Login(ctx, credentials)
	if err != nil {
		return err
	}
	return m.establish(resp)
}

// Register creates an account and establishes the session, symmetric
// to Login.
func (m *Manager) Register(ctx context.Context, data domain.RegisterRequest) error {
	resp, err := m.auth.Register(ctx, data)
	if err != nil {
		return err
	}
	return m.establish(resp)
}

func (m *Manager) establish(resp domain.AuthResponse) error {
	if resp.Token == "" {
		return errors.New("[Manager.establish] auth response missing token")
	}
	if err := m.store.SetToken(resp.Token); err != nil {
		return errors.Wrap(err, "[Manager.establish] persisting token")
	}
	m.client.SetToken(resp.Token)

	m.mu.Lock()
	user := resp.User
	m.user = &user
	m.token = resp.Token
	m.mu.Unlock()

	log.Info().Str("email", resp.User.Email).Msg("session: established")
	return nil
}

// Logout ends the session. The remote logout call is best-effort:
// local clearing happens regardless of its outcome.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.auth.Logout(ctx); err != nil {
		log.Warn().Err(err).Msg("session: remote logout failed")
	}

	clearErr := m.store.ClearToken()
	m.client.ClearToken()

	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()

	log.Info().Msg("session: ended")
	if clearErr != nil {
		return errors.Wrap(clearErr, "[Manager.Logout] clearing persisted token")
	}
	return nil
}

// CompleteOnboarding marks onboarding as done. Idempotent.
func (m *Manager) CompleteOnboarding() error {
	if err := m.store.SetOnboardingCompleted(true); err != nil {
		return errors.Wrap(err, "[Manager.CompleteOnboarding] persisting onboarding flag")
	}
	m.mu.Lock()
	m.onboardingDone = true
	m.mu.Unlock()
	return nil
}

// User returns the current user, or nil while anonymous.
func (m *Manager) User() *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *Manager) IsOnboardingCompleted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.onboardingDone
}

// Snapshot returns the full session record in one consistent read.
func (m *Manager) Snapshot() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var user *domain.User
	if m.user != nil {
		u := *m.user
		user = &u
	}
	return Session{
		User:                  user,
		Token:                 m.token,
		IsLoading:             m.loading,
		IsOnboardingCompleted: m.onboardingDone,
	}
}
