package game

import (
	"errors"

	"slot_machine/internal/model"
)

var (
	// ErrCooldown и ErrSpinInProgress - защита от повторного нажатия, игроку не показываются
	ErrCooldown       = errors.New("spin cooldown not elapsed")
	ErrSpinInProgress = errors.New("spin already in progress")

	ErrSignInRequired = errors.New("guest attempt already used, sign in required")
	ErrOutOfAttempts  = errors.New("no attempts left for today")

	ErrNoPopup = errors.New("no win popup to close")
)

// promptFor - подсказка игроку для ошибки недоступности спина
func promptFor(err error) model.Prompt {
	switch {
	case errors.Is(err, ErrSignInRequired):
		return model.PromptLogin
	case errors.Is(err, ErrOutOfAttempts):
		return model.PromptOutOfSpins
	default:
		return model.PromptNone
	}
}
