package win_repo

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
)

const (
	table           = "wins"
	colID           = "id"
	colUserID       = "user_id"
	colWinCode      = "win_code"
	colWinAmount    = "win_amount"
	colWinningLabel = "winning_label"
	colSymbols      = "symbols"
	colCreatedAt    = "created_at"
	colIsClaimed    = "is_claimed"
	colClaimedAt    = "claimed_at"

	// Код ошибки Postgres при нарушении уникальности
	uniqueViolation = "23505"
)

var allColumns = []string{
	colID, colUserID, colWinCode, colWinAmount, colWinningLabel,
	colSymbols, colCreatedAt, colIsClaimed, colClaimedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWinRepository(dbc *pgxpool.Pool) repository.WinRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateWin - сохраняет выигрыш. При занятом коде возвращает ErrCodeTaken
func (r *repo) CreateWin(ctx context.Context, win *model.WinRecord) error {
	symbols := win.Symbols
	if symbols == nil {
		symbols = []string{}
	}

	query := sq.Insert(table).
		Columns(colID, colUserID, colWinCode, colWinAmount, colWinningLabel, colSymbols, colCreatedAt, colIsClaimed).
		Values(win.ID, win.UserID, win.WinCode, win.WinAmount, win.WinningLabel, symbols, win.CreatedAt, false).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrCodeTaken
		}
		return err
	}

	return nil
}

// GetWinByCodeForUpdate - выигрыш по коду с блокировкой строки до конца транзакции
func (r *repo) GetWinByCodeForUpdate(ctx context.Context, code string) (*model.WinRecord, error) {
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.Eq{colWinCode: code}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	win, err := scanWin(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return win, nil
}

// MarkClaimed - гасит выигрыш, только если он еще не погашен
func (r *repo) MarkClaimed(ctx context.Context, id string, at time.Time) (bool, error) {
	query := sq.Update(table).
		Set(colIsClaimed, true).
		Set(colClaimedAt, at).
		Where(sq.Eq{colID: id, colIsClaimed: false}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

// ListWins - страница выигрышей, новые первыми
func (r *repo) ListWins(ctx context.Context, filter model.WinFilter, limit, offset int) ([]model.WinRecord, error) {
	query := applyFilter(sq.Select(allColumns...).From(table), filter).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wins := make([]model.WinRecord, 0, limit)
	for rows.Next() {
		win, err := scanWin(rows)
		if err != nil {
			return nil, err
		}
		wins = append(wins, *win)
	}

	return wins, rows.Err()
}

// CountWins - количество выигрышей под фильтром
func (r *repo) CountWins(ctx context.Context, filter model.WinFilter) (int, error) {
	query := applyFilter(sq.Select("COUNT(*)").From(table), filter).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func applyFilter(query sq.SelectBuilder, filter model.WinFilter) sq.SelectBuilder {
	switch filter {
	case model.WinFilterClaimed:
		return query.Where(sq.Eq{colIsClaimed: true})
	case model.WinFilterUnclaimed:
		return query.Where(sq.Eq{colIsClaimed: false})
	default:
		return query
	}
}

func scanWin(row pgx.Row) (*model.WinRecord, error) {
	var w model.WinRecord
	err := row.Scan(
		&w.ID, &w.UserID, &w.WinCode, &w.WinAmount, &w.WinningLabel,
		&w.Symbols, &w.CreatedAt, &w.IsClaimed, &w.ClaimedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
