package env

import (
	"slot_machine/internal/config"
)

type pgEnv struct {
	DSN string `env:"PG_DSN,required,notEmpty"`
}

type pgConfig struct {
	dsn string
}

func NewPGConfig() (config.PGConfig, error) {
	var raw pgEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}

	return &pgConfig{
		dsn: raw.DSN,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
