package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config interface {
	EnvConfig
	APIConfig
}

type EnvConfig interface {
	GetAppName() string
	GetDataFolder() string
	GetEnv() string
	GetLogLevel() string
}

type APIConfig interface {
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
	UseSimulatedAPI() bool
}

type mainConfig struct {
	EnvVars
	APIVars
}

func New() Config {
	return mainConfig{}
}

// Load reads a .env file into the process environment before New is
// called. A missing file is not an error; deployed environments set
// their variables directly.
func Load(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Debug().Err(err).Msg("config: no .env file loaded")
	}
}
