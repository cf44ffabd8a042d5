package repository

import (
	"context"
	"errors"
	"time"

	"slot_machine/internal/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrCodeTaken = errors.New("win code already taken")
)

type ProfileRepository interface {
	// GetProfile возвращает ErrNotFound, если профиля нет
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	ResetDailyAttempts(ctx context.Context, userID string, attempts int, date string) (*model.Profile, error)
	SetAttemptsRemaining(ctx context.Context, userID string, n int) error
}

type WinRepository interface {
	// CreateWin возвращает ErrCodeTaken при конфликте кода
	CreateWin(ctx context.Context, win *model.WinRecord) error
	GetWinByCodeForUpdate(ctx context.Context, code string) (*model.WinRecord, error)
	// MarkClaimed возвращает false, если выигрыш уже погашен
	MarkClaimed(ctx context.Context, id string, at time.Time) (bool, error)
	ListWins(ctx context.Context, filter model.WinFilter, limit, offset int) ([]model.WinRecord, error)
	CountWins(ctx context.Context, filter model.WinFilter) (int, error)
}

type GuestRepository interface {
	HasAttemptToday(ctx context.Context, guestID, today string) (bool, error)
	MarkAttemptUsed(ctx context.Context, guestID, today string) error
	ClearAttempt(ctx context.Context, guestID string) error
}

type StatsRepository interface {
	RecordRound(result model.SpinResult)
	Report() model.StatsReport
}
