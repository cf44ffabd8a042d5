package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"slot_machine/pkg/resp"
	"slot_machine/pkg/token"
)

// Auth кладет ID пользователя из Bearer токена в контекст.
// Запрос без токена проходит дальше как гостевой, битый токен дает 401
func Auth(secretKey []byte, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "malformed authorization header", "login")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				logger.Debug("token rejected", zap.Error(err))
				resp.WriteError(w, http.StatusUnauthorized, "invalid token", "login")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.Subject)))
		})
	}
}
