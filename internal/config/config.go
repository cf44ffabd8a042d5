package config

import (
	"github.com/joho/godotenv"

	"slot_machine/internal/model"
	"slot_machine/internal/reel"
	"slot_machine/internal/service/game"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GameConfig interface {
	Catalog() []model.Symbol
	Settings() game.Settings
	ReelParams() reel.Params
	MaxCodeAttempts() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
}

type AdminConfig interface {
	OperatorKeyHash() []byte
}

type LogConfig interface {
	Level() string
	Development() bool
}
