// Package routeguard decides whether the current session state
// requires a navigation redirect. Decide is a pure function of its
// inputs and carries no history; Evaluator adds the one-shot settle
// delay that keeps the guard quiet until the navigation shell has
// mounted.
package routeguard

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Navigation sections known to the guard. SectionTabs is the
// authenticated area; the empty string is the root path.
const (
	SectionOnboarding = "onboarding"
	SectionWelcome    = "welcome"
	SectionLogin      = "login"
	SectionRegister   = "register"
	SectionSplash     = "splash"
	SectionTabs       = "(tabs)"
)

// DefaultSettleDelay is how long an Evaluator stays quiet after
// construction before it starts issuing redirects.
const DefaultSettleDelay = 100 * time.Millisecond

// Inputs is the complete state the guard decides from.
type Inputs struct {
	HasUser             bool
	IsLoading           bool
	OnboardingCompleted bool
	Section             string
}

// Decide returns the section to redirect to and whether a redirect is
// required. Rules are evaluated top to bottom, first match wins:
//
//  1. While the session is loading, never redirect.
//  2. Onboarding not completed and not in onboarding: go to onboarding.
//  3. Onboarding completed but still in onboarding: go to welcome.
//  4. No user inside the authenticated area: go to welcome.
//  5. Authenticated and onboarded on a public section or the root:
//     go to the authenticated area.
//  6. Otherwise stay put.
func Decide(in Inputs) (string, bool) {
	if in.IsLoading {
		return "", false
	}
	if !in.OnboardingCompleted && in.Section != SectionOnboarding {
		return SectionOnboarding, true
	}
	if in.OnboardingCompleted && in.Section == SectionOnboarding {
		return SectionWelcome, true
	}
	if !in.HasUser && in.Section == SectionTabs {
		return SectionWelcome, true
	}
	if in.HasUser && in.OnboardingCompleted && isPublicSection(in.Section) {
		return SectionTabs, true
	}
	return "", false
}

func isPublicSection(section string) bool {
	switch section {
	case SectionWelcome, SectionLogin, SectionRegister, SectionSplash, "":
		return true
	}
	return false
}

// Evaluator wraps Decide with the settle delay: every evaluation
// before the delay has elapsed returns no-redirect, after that it is
// a plain call to Decide.
type Evaluator struct {
	settleDelay time.Duration
	ready       atomic.Bool
	timer       *time.Timer
}

type EvaluatorOption func(*Evaluator)

// WithSettleDelay overrides the default settle delay. Zero or
// negative makes the evaluator ready immediately.
func WithSettleDelay(d time.Duration) EvaluatorOption {
	return func(e *Evaluator) {
		e.settleDelay = d
	}
}

func NewEvaluator(options ...EvaluatorOption) *Evaluator {
	e := &Evaluator{settleDelay: DefaultSettleDelay}
	for _, option := range options {
		option(e)
	}

	if e.settleDelay <= 0 {
		e.ready.Store(true)
		return e
	}
	e.timer = time.AfterFunc(e.settleDelay, func() {
		e.ready.Store(true)
	})
	return e
}

// Evaluate applies Decide once the settle delay has elapsed.
func (e *Evaluator) Evaluate(in Inputs) (string, bool) {
	if !e.ready.Load() {
		return "", false
	}
	target, redirect := Decide(in)
	if redirect {
		log.Debug().Str("from", in.Section).Str("to", target).Msg("routeguard: redirect")
	}
	return target, redirect
}

// Stop cancels the settle timer. An evaluator stopped before the
// delay elapsed never becomes ready.
func (e *Evaluator) Stop() {
	if e.timer != nil {
		e.timer.Stop()
	}
}
