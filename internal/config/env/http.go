package env

import (
	"slot_machine/internal/config"
)

type httpEnv struct {
	Address string `env:"HTTP_ADDRESS" envDefault:":8080"`
}

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var raw httpEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}

	return &httpConfig{address: raw.Address}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}
