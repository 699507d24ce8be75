// Package simulated is the in-memory stand-in for the real backend,
// used for offline development. Every operation waits an artificial
// delay before acting so callers keep realistic asynchronous timing,
// and mutations act on shared in-process collections, so effects are
// visible to subsequent reads but never survive a restart.
package simulated

import (
	"context"
	"sync"
	"time"

	"github.com/deadtood/appcore/domain"
)

// Base per-operation delays, chosen to feel like a nearby backend.
const (
	authDelay  = 500 * time.Millisecond
	listDelay  = 300 * time.Millisecond
	writeDelay = 300 * time.Millisecond
	readDelay  = 200 * time.Millisecond
)

type store struct {
	mu sync.RWMutex

	latency time.Duration // replaces the per-operation defaults when >= 0
	nowTime func() time.Time
	tokenFn func() string

	accounts map[string]*account // keyed by email
	tasks    []domain.Task
	courses  []domain.Course
	settings domain.UserSettings
}

type account struct {
	user         domain.User
	passwordHash string
}

// Backend bundles the simulated per-domain services. All of them share
// one store, so a created task is visible to the dashboard and course
// reads within the same process lifetime.
type Backend struct {
	Auth      *AuthService
	Tasks     *TaskService
	Courses   *CourseService
	Dashboard *DashboardService
	Settings  *SettingsService
}

// Option configures the simulated backend.
type Option func(*store)

// WithLatency replaces the default per-operation delays with a fixed
// duration. Zero disables the artificial latency entirely (tests).
func WithLatency(d time.Duration) Option {
	return func(s *store) {
		s.latency = d
	}
}

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) Option {
	return func(s *store) {
		s.nowTime = nowFunc
	}
}

// WithTokenSource provides the bearer token currently held by the
// transport, letting the simulated auth service validate requests the
// way the real backend would.
func WithTokenSource(tokenFn func() string) Option {
	return func(s *store) {
		s.tokenFn = tokenFn
	}
}

// New builds a simulated backend seeded with a demo account, six
// courses and twenty-five tasks.
func New(options ...Option) *Backend {
	s := &store{
		latency: -1,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	s.seed()

	return &Backend{
		Auth:      &AuthService{store: s},
		Tasks:     &TaskService{store: s},
		Courses:   &CourseService{store: s},
		Dashboard: &DashboardService{store: s},
		Settings:  &SettingsService{store: s},
	}
}

// wait blocks for the operation's artificial delay, or until the
// caller's context is done.
func (s *store) wait(ctx context.Context, base time.Duration) error {
	d := base
	if s.latency >= 0 {
		d = s.latency
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
