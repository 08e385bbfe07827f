package commit_reservation

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type mockReservationRepository struct {
	lockDateFunc       func(ctx context.Context, date domain.Date) error
	getSlotsByDateFunc func(ctx context.Context, date domain.Date) ([]domain.HourSlot, error)
	createBatchFunc    func(ctx context.Context, batch *domain.ReservationBatch) error

	mu    sync.Mutex
	calls int
}

func (m *mockReservationRepository) touch() {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
}

func (m *mockReservationRepository) LockDate(ctx context.Context, date domain.Date) error {
	m.touch()
	if m.lockDateFunc != nil {
		return m.lockDateFunc(ctx, date)
	}
	return nil
}

func (m *mockReservationRepository) GetSlotsByDate(ctx context.Context, date domain.Date) ([]domain.HourSlot, error) {
	m.touch()
	if m.getSlotsByDateFunc != nil {
		return m.getSlotsByDateFunc(ctx, date)
	}
	return []domain.HourSlot{}, nil
}

func (m *mockReservationRepository) CreateBatch(ctx context.Context, batch *domain.ReservationBatch) error {
	m.touch()
	if m.createBatchFunc != nil {
		return m.createBatchFunc(ctx, batch)
	}
	return nil
}

// passthroughTx выполняет функцию без настоящей транзакции
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLocker struct{}

func (noopLocker) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

type mockNotifier struct {
	dispatchFunc func(ctx context.Context, batch *domain.ReservationBatch) error

	mu      sync.Mutex
	batches []*domain.ReservationBatch
}

func (m *mockNotifier) Name() string {
	return "mock"
}

func (m *mockNotifier) Dispatch(ctx context.Context, batch *domain.ReservationBatch) error {
	m.mu.Lock()
	m.batches = append(m.batches, batch)
	m.mu.Unlock()
	if m.dispatchFunc != nil {
		return m.dispatchFunc(ctx, batch)
	}
	return nil
}

func (m *mockNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.batches)
}

type recordingMetrics struct {
	mu                   sync.Mutex
	outcomes             map[string]int
	reservations         int
	notificationFailures int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{outcomes: make(map[string]int)}
}

func (m *recordingMetrics) ObserveBooking(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

func (m *recordingMetrics) AddReservations(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations += n
}

func (m *recordingMetrics) IncNotificationFailure(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notificationFailures++
}

func (m *recordingMetrics) outcome(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcomes[name]
}
