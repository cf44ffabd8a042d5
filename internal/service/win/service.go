package win

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/service"
)

// ErrCodeExhausted - не удалось подобрать свободный код за отведенное число попыток
var ErrCodeExhausted = errors.New("unique win code generation exhausted")

type serv struct {
	repo        repository.WinRepository
	maxAttempts int
	codes       func() (string, error)
	now         func() time.Time
	logger      *zap.Logger
}

// NewWinService создает сервис сохранения выигрышей
func NewWinService(repo repository.WinRepository, maxAttempts int, logger *zap.Logger) service.WinService {
	return &serv{
		repo:        repo,
		maxAttempts: maxAttempts,
		codes:       GenerateCode,
		now:         time.Now,
		logger:      logger,
	}
}

// RecordWin сохраняет выигрыш с уникальным кодом получения.
// При конфликте кода генерирует новый, не больше maxAttempts раз
func (s *serv) RecordWin(ctx context.Context, userID string, amount int, label string, symbols []string) (string, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		code, err := s.codes()
		if err != nil {
			return "", fmt.Errorf("generate win code: %w", err)
		}

		record := &model.WinRecord{
			ID:           uuid.NewString(),
			UserID:       userID,
			WinCode:      code,
			WinAmount:    amount,
			WinningLabel: label,
			Symbols:      symbols,
			CreatedAt:    s.now().UTC(),
		}

		err = s.repo.CreateWin(ctx, record)
		if errors.Is(err, repository.ErrCodeTaken) {
			s.logger.Debug("win code collision", zap.String("code", code), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create win: %w", err)
		}

		s.logger.Info("win recorded",
			zap.String("user_id", userID), zap.String("code", code), zap.Int("amount", amount))
		return code, nil
	}

	return "", ErrCodeExhausted
}
