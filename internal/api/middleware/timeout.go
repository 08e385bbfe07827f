package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

const msgRequestTimeout = `{"error":"request timeout"}`

// timeoutWriter отдает хендлеру собственную карту заголовков.
// В исходный writer заголовки попадают только под mu, поэтому хендлер,
// продолжающий работу после таймаута, не пишет в общую карту.
type timeoutWriter struct {
	w http.ResponseWriter
	h http.Header

	mu          sync.Mutex
	timedOut    bool
	wroteHeader bool
}

func newTimeoutWriter(w http.ResponseWriter) *timeoutWriter {
	return &timeoutWriter{
		w: w,
		h: w.Header().Clone(),
	}
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.h
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.writeHeaderLocked(code)
}

func (tw *timeoutWriter) writeHeaderLocked(code int) {
	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.wroteHeader = true

	dst := tw.w.Header()
	for k, vv := range tw.h {
		dst[k] = append([]string(nil), vv...)
	}
	tw.w.WriteHeader(code)
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	tw.writeHeaderLocked(http.StatusOK)
	return tw.w.Write(b)
}

// expire помечает ответ просроченным; если хендлер еще ничего не отправил, пишет 503
func (tw *timeoutWriter) expire() {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.wroteHeader {
		tw.timedOut = true
		return
	}
	tw.timedOut = true
	tw.wroteHeader = true

	tw.w.Header().Set("Content-Type", "application/json")
	tw.w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = tw.w.Write([]byte(msgRequestTimeout))
}

// RequestTimeout ограничивает время обработки запроса.
// Коммит, прерванный таймаутом, для клиента имеет неизвестный исход: повтор даст конфликт, а не двойную бронь.
func RequestTimeout(timeout time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := newTimeoutWriter(w)
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				tw.expire()
			}
		})
	}
}
