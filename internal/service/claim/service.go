package claim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/service"
	"slot_machine/internal/service/win"
)

// PageSize - выигрышей на странице списка
const PageSize = 20

type serv struct {
	repo      repository.WinRepository
	txManager trm.Manager
	now       func() time.Time
	logger    *zap.Logger
}

// NewClaimService создает сервис погашения кодов
func NewClaimService(repo repository.WinRepository, txManager trm.Manager, logger *zap.Logger) service.ClaimService {
	return &serv{
		repo:      repo,
		txManager: txManager,
		now:       time.Now,
		logger:    logger,
	}
}

// Redeem гасит код в одной транзакции: блокировка строки, затем условное обновление.
// Из двух одновременных погашений успешным будет только одно
func (s *serv) Redeem(ctx context.Context, code string) (model.ClaimOutcome, error) {
	code = win.NormalizeCode(code)
	if !win.ValidCode(code) {
		return model.ClaimInvalidCode, nil
	}

	var outcome model.ClaimOutcome
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		record, err := s.repo.GetWinByCodeForUpdate(txCtx, code)
		if errors.Is(err, repository.ErrNotFound) {
			outcome = model.ClaimInvalidCode
			return nil
		}
		if err != nil {
			return fmt.Errorf("get win by code: %w", err)
		}

		if record.IsClaimed {
			outcome = model.ClaimAlreadyClaimed
			return nil
		}

		claimed, err := s.repo.MarkClaimed(txCtx, record.ID, s.now().UTC())
		if err != nil {
			return fmt.Errorf("mark claimed: %w", err)
		}
		if !claimed {
			outcome = model.ClaimAlreadyClaimed
			return nil
		}

		outcome = model.ClaimSuccess
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("claim code redeemed", zap.String("code", code), zap.String("outcome", string(outcome)))
	return outcome, nil
}

// List возвращает страницу выигрышей, новые первыми. Страницы считаются с 1
func (s *serv) List(ctx context.Context, filter model.WinFilter, page int) (*model.WinPage, error) {
	total, err := s.repo.CountWins(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count wins: %w", err)
	}

	totalPages := (total + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	wins, err := s.repo.ListWins(ctx, filter, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, fmt.Errorf("list wins: %w", err)
	}

	return &model.WinPage{
		Wins:       wins,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}
