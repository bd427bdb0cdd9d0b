package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/supasport/booking-service/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// HeaderUserID заголовок с идентификатором аутентифицированного
// пользователя. Проставляется вышестоящим шлюзом.
const HeaderUserID = "X-User-ID"

// Auth требует валидный заголовок X-User-ID и кладёт идентификатор
// пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID достаёт идентификатор пользователя из контекста.
// Возвращает 0, если запрос не проходил через Auth.
func GetUserID(ctx context.Context) int64 {
	userID, _ := ctx.Value(userIDKey).(int64)
	return userID
}
