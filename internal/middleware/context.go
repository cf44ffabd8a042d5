package middleware

import (
	"context"

	"slot_machine/internal/model"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	guestIDKey
)

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func WithGuestID(ctx context.Context, guestID string) context.Context {
	return context.WithValue(ctx, guestIDKey, guestID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func GuestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(guestIDKey).(string)
	return id, ok && id != ""
}

// PlayerFromContext - игрок запроса. Авторизация важнее гостевой cookie
func PlayerFromContext(ctx context.Context) (model.Player, bool) {
	if id, ok := UserIDFromContext(ctx); ok {
		return model.Player{UserID: id}, true
	}
	if id, ok := GuestIDFromContext(ctx); ok {
		return model.Player{GuestID: id}, true
	}
	return model.Player{}, false
}
