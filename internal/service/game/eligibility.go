package game

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
)

// Gate проверяет, может ли игрок крутить, и списывает попытку
type Gate struct {
	profiles        repository.ProfileRepository
	guests          repository.GuestRepository
	defaultAttempts int
	logger          *zap.Logger
}

func NewGate(profiles repository.ProfileRepository, guests repository.GuestRepository, defaultAttempts int, logger *zap.Logger) *Gate {
	return &Gate{
		profiles:        profiles,
		guests:          guests,
		defaultAttempts: defaultAttempts,
		logger:          logger,
	}
}

// Allowance - сколько попыток доступно игроку
type Allowance struct {
	AttemptsRemaining int
	GuestSpinUsed     bool
}

// Peek возвращает доступные попытки без изменения хранилищ
func (g *Gate) Peek(ctx context.Context, player model.Player, now time.Time) Allowance {
	today := now.Format(model.DateLayout)

	if !player.Authenticated() {
		used, err := g.guests.HasAttemptToday(ctx, player.GuestID, today)
		if err != nil {
			g.logger.Warn("guest attempt read failed", zap.String("guest_id", player.GuestID), zap.Error(err))
		}
		return Allowance{GuestSpinUsed: used}
	}

	profile, err := g.profiles.GetProfile(ctx, player.UserID)
	if err != nil || profile.LastResetDate < today {
		return Allowance{AttemptsRemaining: g.defaultAttempts}
	}
	return Allowance{AttemptsRemaining: profile.AttemptsRemaining}
}

// Consume проверяет квоту и списывает одну попытку.
// При недоступности спина хранилища не меняются
func (g *Gate) Consume(ctx context.Context, player model.Player, now time.Time) (Allowance, error) {
	today := now.Format(model.DateLayout)

	if !player.Authenticated() {
		return g.consumeGuest(ctx, player.GuestID, today)
	}
	return g.consumeUser(ctx, player.UserID, today)
}

func (g *Gate) consumeGuest(ctx context.Context, guestID, today string) (Allowance, error) {
	used, err := g.guests.HasAttemptToday(ctx, guestID, today)
	if err != nil {
		// Хранилище недоступно, пропускаем гостя
		g.logger.Warn("guest attempt read failed", zap.String("guest_id", guestID), zap.Error(err))
	}
	if used {
		return Allowance{GuestSpinUsed: true}, ErrSignInRequired
	}

	if err := g.guests.MarkAttemptUsed(ctx, guestID, today); err != nil {
		g.logger.Error("mark guest attempt failed", zap.String("guest_id", guestID), zap.Error(err))
	}
	return Allowance{GuestSpinUsed: true}, nil
}

func (g *Gate) consumeUser(ctx context.Context, userID, today string) (Allowance, error) {
	attempts := g.defaultAttempts

	profile, err := g.profiles.GetProfile(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound) || (err == nil && profile.LastResetDate < today):
		// Новый игрок или новый день
		profile, err = g.profiles.ResetDailyAttempts(ctx, userID, g.defaultAttempts, today)
		if err != nil {
			g.logger.Error("reset daily attempts failed", zap.String("user_id", userID), zap.Error(err))
		} else {
			attempts = profile.AttemptsRemaining
		}
	case err != nil:
		g.logger.Warn("profile read failed, assuming default attempts", zap.String("user_id", userID), zap.Error(err))
	default:
		attempts = profile.AttemptsRemaining
	}

	if attempts <= 0 {
		return Allowance{}, ErrOutOfAttempts
	}

	attempts--
	if err := g.profiles.SetAttemptsRemaining(ctx, userID, attempts); err != nil {
		g.logger.Error("persist attempts failed", zap.String("user_id", userID), zap.Error(err))
	}
	return Allowance{AttemptsRemaining: attempts}, nil
}
