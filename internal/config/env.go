package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds runtime settings that may come from the environment.
// The CLI uses them for any flag the user did not pass explicitly.
type Env struct {
	FPS        int    `env:"BOATRUNNER_FPS"`
	Seed       int64  `env:"BOATRUNNER_SEED"`
	DBPath     string `env:"BOATRUNNER_DB"`
	ConfigPath string `env:"BOATRUNNER_CONFIG"`
	Difficulty string `env:"BOATRUNNER_DIFFICULTY"`
	LogLevel   string `env:"BOATRUNNER_LOG_LEVEL"`
	LogFile    string `env:"BOATRUNNER_LOG_FILE"`
	SSHAddr    string `env:"BOATRUNNER_SSH_ADDR"`
}

// ParseEnv loads runtime settings from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
