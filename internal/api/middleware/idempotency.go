package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

// HeaderIdempotencyKey заголовок, по которому повтор запроса получает прежний ответ
const HeaderIdempotencyKey = "Idempotency-Key"

// HeaderIdempotentReplay выставляется на ответах, взятых из кэша
const HeaderIdempotentReplay = "Idempotent-Replayed"

const cleanupInterval = time.Minute

type IdempotencyStore interface {
	Get(key string) (*CachedResponse, bool)
	Set(key string, response *CachedResponse)
	Stop()
}

type CachedResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	CreatedAt  time.Time
}

// InMemoryIdempotencyStore хранит ответы в памяти процесса с TTL
type InMemoryIdempotencyStore struct {
	mu     sync.RWMutex
	store  map[string]*CachedResponse
	ttl    time.Duration
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

func NewInMemoryIdempotencyStore(ttl time.Duration) *InMemoryIdempotencyStore {
	s := &InMemoryIdempotencyStore{
		store:  make(map[string]*CachedResponse),
		ttl:    ttl,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	go s.cleanup()
	return s
}

func (s *InMemoryIdempotencyStore) Get(key string) (*CachedResponse, bool) {
	s.mu.RLock()
	resp, ok := s.store[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if s.now().Sub(resp.CreatedAt) > s.ttl {
		s.mu.Lock()
		delete(s.store, key)
		s.mu.Unlock()
		return nil, false
	}
	return resp, true
}

func (s *InMemoryIdempotencyStore) Set(key string, response *CachedResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	response.CreatedAt = s.now()
	s.store[key] = response
}

func (s *InMemoryIdempotencyStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}

func (s *InMemoryIdempotencyStore) Stop() {
	s.once.Do(func() { close(s.stopCh) })
}

func (s *InMemoryIdempotencyStore) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *InMemoryIdempotencyStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, resp := range s.store {
		if now.Sub(resp.CreatedAt) > s.ttl {
			delete(s.store, key)
		}
	}
}

// Idempotency повторяет успешный ответ для запроса с тем же Idempotency-Key.
// Кэшируются только 2xx: конфликт или ошибка при повторе выполняются заново.
func Idempotency(store IdempotencyStore) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderIdempotencyKey)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			storeKey := r.Method + " " + r.URL.Path + " " + key
			if cached, ok := store.Get(storeKey); ok {
				replay(w, cached)
				return
			}

			cw := &captureWriter{statusWriter: newStatusWriter(w)}
			next.ServeHTTP(cw, r)

			if cw.statusCode >= 200 && cw.statusCode < 300 {
				// X-Request-ID принадлежит конкретному запросу, при повторе остается новый
				headers := w.Header().Clone()
				headers.Del(HeaderRequestID)

				store.Set(storeKey, &CachedResponse{
					StatusCode: cw.statusCode,
					Headers:    headers,
					Body:       cw.body.Bytes(),
				})
			}
		})
	}
}

func replay(w http.ResponseWriter, cached *CachedResponse) {
	for key, values := range cached.Headers {
		w.Header()[key] = append([]string(nil), values...)
	}
	w.Header().Set(HeaderIdempotentReplay, "true")
	w.WriteHeader(cached.StatusCode)
	_, _ = w.Write(cached.Body)
}
