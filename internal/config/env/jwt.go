package env

import (
	"slot_machine/internal/config"
)

type jwtEnv struct {
	AccessTokenSecretKey string `env:"ACCESS_TOKEN,required,notEmpty"`
}

type jwtConfig struct {
	accessTokenSecretKey string
}

func NewJWTConfig() (config.JWTConfig, error) {
	var raw jwtEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}

	return &jwtConfig{
		accessTokenSecretKey: raw.AccessTokenSecretKey,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}
