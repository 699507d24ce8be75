package session

// Store is the durable local storage behind the session manager: one
// string key for the bearer token and one boolean for onboarding
// completion. It is read once at startup and written on the
// corresponding session transitions.
type Store interface {
	Token() (string, error)
	SetToken(token string) error
	ClearToken() error
	OnboardingCompleted() (bool, error)
	SetOnboardingCompleted(done bool) error
}
