package profile_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
)

const (
	table                = "profiles"
	colUserID            = "user_id"
	colAttemptsRemaining = "attempts_remaining"
	colLastResetDate     = "last_reset_date"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewProfileRepository(dbc *pgxpool.Pool) repository.ProfileRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetProfile - квота игрока. Возвращает ErrNotFound, если профиля еще нет
func (r *repo) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	query := sq.Select(colUserID, colAttemptsRemaining, colLastResetDate).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p model.Profile
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&p.UserID, &p.AttemptsRemaining, &p.LastResetDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

// ResetDailyAttempts - создает профиль или сбрасывает квоту на новый день
func (r *repo) ResetDailyAttempts(ctx context.Context, userID string, attempts int, date string) (*model.Profile, error) {
	query := sq.Insert(table).
		Columns(colUserID, colAttemptsRemaining, colLastResetDate).
		Values(userID, attempts, date).
		Suffix("ON CONFLICT (" + colUserID + ") DO UPDATE SET " +
			colAttemptsRemaining + " = EXCLUDED." + colAttemptsRemaining + ", " +
			colLastResetDate + " = EXCLUDED." + colLastResetDate +
			" RETURNING " + colUserID + ", " + colAttemptsRemaining + ", " + colLastResetDate).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p model.Profile
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&p.UserID, &p.AttemptsRemaining, &p.LastResetDate)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// SetAttemptsRemaining - обновляет остаток попыток
func (r *repo) SetAttemptsRemaining(ctx context.Context, userID string, n int) error {
	query := sq.Update(table).
		Set(colAttemptsRemaining, n).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}
