package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// HeaderRequestID заголовок с идентификатором запроса
const HeaderRequestID = "X-Request-ID"

// RequestIDFromContext возвращает id запроса или пустую строку
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestLogging присваивает запросу id и логирует результат
func RequestLogging(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, requestID)
			r = r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID))

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			log.Info("HTTP %s %s - status=%d, duration_ms=%d, request_id=%s",
				r.Method, r.URL.Path, sw.statusCode, time.Since(start).Milliseconds(), requestID)
		})
	}
}
