package storefake

import (
	"sync"

	"github.com/deadtood/appcore/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore is an in-memory session store for tests.
type FakeStore struct {
	mu             sync.Mutex
	token          string
	onboardingDone bool

	// TokenErr, when set, is returned by Token to simulate a broken
	// storage backend.
	TokenErr error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (f *FakeStore) Token() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.TokenErr != nil {
		return "", f.TokenErr
	}
	return f.token, nil
}

func (f *FakeStore) SetToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	return nil
}

func (f *FakeStore) ClearToken() error {
	return f.SetToken("")
}

func (f *FakeStore) OnboardingCompleted() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.onboardingDone, nil
}

func (f *FakeStore) SetOnboardingCompleted(done bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onboardingDone = done
	return nil
}
