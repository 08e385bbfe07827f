package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
)

// Recovery превращает panic в 500 и пишет стек в лог
func Recovery(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("Panic recovered: method=%s, path=%s, request_id=%s, error=%v\n%s",
						r.Method, r.URL.Path, RequestIDFromContext(r.Context()), rec, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
