package middleware

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"slot_machine/pkg/resp"
)

const OperatorKeyHeader = "X-Operator-Key"

// OperatorKey пускает к админке только с ключом оператора
func OperatorKey(hash []byte, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(OperatorKeyHeader)
			if key == "" {
				resp.WriteError(w, http.StatusUnauthorized, "operator key required", "")
				return
			}
			if err := bcrypt.CompareHashAndPassword(hash, []byte(key)); err != nil {
				logger.Warn("operator key rejected", zap.String("remote", r.RemoteAddr))
				resp.WriteError(w, http.StatusUnauthorized, "invalid operator key", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
