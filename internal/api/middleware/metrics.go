package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// MetricsMiddleware пишет длительность и статус запросов.
// path берется из шаблона маршрута, чтобы query не раздувал кардинальность.
func MetricsMiddleware(collector MetricsCollector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			collector.ObserveHTTPRequest(r.Method, routeTemplate(r), sw.statusCode, time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
