package guest_repo

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"slot_machine/internal/repository"
)

const (
	keyPrefix = "guest_attempt:"
	// Ключ живет дольше суток, чтобы пережить смену даты
	keyTTL = 48 * time.Hour
)

type repo struct {
	rdb redis.Cmdable
}

func NewGuestRepository(rdb redis.Cmdable) repository.GuestRepository {
	return &repo{rdb: rdb}
}

func key(guestID string) string {
	return keyPrefix + guestID
}

// HasAttemptToday - гость уже крутил в эту дату
func (r *repo) HasAttemptToday(ctx context.Context, guestID, today string) (bool, error) {
	date, err := r.rdb.Get(ctx, key(guestID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return date == today, nil
}

// MarkAttemptUsed - записывает дату попытки гостя
func (r *repo) MarkAttemptUsed(ctx context.Context, guestID, today string) error {
	return r.rdb.Set(ctx, key(guestID), today, keyTTL).Err()
}

// ClearAttempt - удаляет отметку о попытке
func (r *repo) ClearAttempt(ctx context.Context, guestID string) error {
	return r.rdb.Del(ctx, key(guestID)).Err()
}
