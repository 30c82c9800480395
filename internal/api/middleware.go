// Файл: internal/api/middleware.go
package api

import (
	"context"
	"net/http"
	"strings"

	"marketing/internal/utils"
)

// RequestIDHeader - заголовок с идентификатором запроса.
const RequestIDHeader = "X-Request-ID"

// RequestIDContextKey - ключ для сохранения идентификатора запроса в контексте.
var RequestIDContextKey = &contextKey{"RequestID"}

type contextKey struct {
	name string
}

// RequestIDMiddleware берет X-Request-ID из запроса или генерирует новый и возвращает его в ответе.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" {
			id = utils.GenerateUUID()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), RequestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext возвращает идентификатор запроса или пустую строку.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDContextKey).(string)
	return id
}
