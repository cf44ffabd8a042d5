package env

import (
	"slot_machine/internal/config"
)

type redisEnv struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type redisConfig struct {
	addr     string
	password string
	db       int
}

func NewRedisConfig() (config.RedisConfig, error) {
	var raw redisEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}

	return &redisConfig{
		addr:     raw.Addr,
		password: raw.Password,
		db:       raw.DB,
	}, nil
}

func (cfg *redisConfig) Addr() string {
	return cfg.addr
}

func (cfg *redisConfig) Password() string {
	return cfg.password
}

func (cfg *redisConfig) DB() int {
	return cfg.db
}
