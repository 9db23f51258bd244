package middleware

import (
	"net/http"
	"strconv"

	"github.com/m04kA/EVP-GatewayService/internal/api/handlers"
)

// userIDHeader заголовок с ID аутентифицированного пользователя.
// Заголовок проставляет API gateway платформы после проверки сессии.
const userIDHeader = "X-User-ID"

const msgUnauthorized = "требуется аутентификация"

// Auth проверяет наличие и корректность заголовка X-User-ID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(userIDHeader)
		if userIDStr == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		if _, err := strconv.ParseInt(userIDStr, 10, 64); err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
