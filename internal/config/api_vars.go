package config

import (
	"time"

	"github.com/rs/zerolog/log"
)

const (
	apiBaseURLVar      = "API_BASE_URL"
	apiTimeoutVar      = "API_TIMEOUT"
	useSimulatedAPIVar = "USE_SIMULATED_API"

	defaultAPITimeout = 30 * time.Second
)

type APIVars struct{}

var _ APIConfig = APIVars{}

func (APIVars) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, "http://localhost:3000/api")
}

// GetAPITimeout parses API_TIMEOUT as a Go duration ("10s", "1m30s").
// An unset or unparseable value falls back to the default.
func (APIVars) GetAPITimeout() time.Duration {
	raw := GetEnv(apiTimeoutVar, "")
	if raw == "" {
		return defaultAPITimeout
	}
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		log.Warn().Str("value", raw).Msg("config: invalid API_TIMEOUT, using default")
		return defaultAPITimeout
	}
	return timeout
}

// UseSimulatedAPI selects the in-memory backend instead of the remote
// one. Defaults to true so the app works with no backend configured.
func (APIVars) UseSimulatedAPI() bool {
	return GetEnv(useSimulatedAPIVar, "true") == "true"
}
