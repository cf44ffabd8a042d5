package service

import (
	"context"

	"slot_machine/internal/model"
)

type GameService interface {
	AttemptSpin(ctx context.Context, player model.Player) (spinID int64, err error)
	State(ctx context.Context, player model.Player) (*model.GameState, error)
	ClosePopup(ctx context.Context, player model.Player) error
	DismissPrompt(ctx context.Context, player model.Player) error
}

type WinService interface {
	RecordWin(ctx context.Context, userID string, amount int, label string, symbols []string) (code string, err error)
}

type ClaimService interface {
	Redeem(ctx context.Context, code string) (model.ClaimOutcome, error)
	List(ctx context.Context, filter model.WinFilter, page int) (*model.WinPage, error)
}

// SoundPlayer - звуковые эффекты, вызовы не блокируют
type SoundPlayer interface {
	PlayLoop(track string)
	StopAll()
	Current() string
}

type StatsService interface {
	Report() model.StatsReport
}
