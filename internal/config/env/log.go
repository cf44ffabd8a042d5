package env

import (
	"slot_machine/internal/config"
)

type logEnv struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

type logConfig struct {
	level       string
	development bool
}

func NewLogConfig() (config.LogConfig, error) {
	var raw logEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}

	return &logConfig{
		level:       raw.Level,
		development: raw.Development,
	}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Development() bool {
	return cfg.development
}
