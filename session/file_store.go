package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileStore persists the session keys as a small JSON file. The token
// is a credential, so the file is written owner-only.
type FileStore struct {
	path string
	mu   sync.Mutex
}

type fileState struct {
	Token               string `json:"token,omitempty"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Token() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.read()
	if err != nil {
		return "", err
	}
	return state.Token, nil
}

func (f *FileStore) SetToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.mutate(func(state *fileState) {
		state.Token = token
	})
}

func (f *FileStore) ClearToken() error {
	return f.SetToken("")
}

func (f *FileStore) OnboardingCompleted() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.read()
	if err != nil {
		return false, err
	}
	return state.OnboardingCompleted, nil
}

func (f *FileStore) SetOnboardingCompleted(done bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.mutate(func(state *fileState) {
		state.OnboardingCompleted = done
	})
}

// read returns the persisted state; a missing file is an empty state,
// not an error.
func (f *FileStore) read() (fileState, error) {
	var state fileState

	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return state, nil
	}
	if err != nil {
		return state, errors.Wrap(err, "[FileStore.read] reading session file")
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		return state, errors.Wrap(err, "[FileStore.read] decoding session file")
	}
	return state, nil
}

func (f *FileStore) mutate(apply func(*fileState)) error {
	state, err := f.read()
	if err != nil {
		return err
	}
	apply(&state)

	raw, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "[FileStore.mutate] encoding session file")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileStore.mutate] creating session directory")
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.mutate] writing session file")
	}
	return nil
}
