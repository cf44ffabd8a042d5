package env

import (
	"slot_machine/internal/config"
)

type adminEnv struct {
	// bcrypt хеш ключа оператора
	OperatorKeyHash string `env:"OPERATOR_KEY_HASH,required,notEmpty"`
}

type adminConfig struct {
	operatorKeyHash string
}

func NewAdminConfig() (config.AdminConfig, error) {
	var raw adminEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}

	return &adminConfig{operatorKeyHash: raw.OperatorKeyHash}, nil
}

func (cfg *adminConfig) OperatorKeyHash() []byte {
	return []byte(cfg.operatorKeyHash)
}
