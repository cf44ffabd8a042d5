package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims - claims access токена внешнего провайдера авторизации.
// ID пользователя лежит в Subject
type UserClaims struct {
	jwt.RegisteredClaims
}
