package commit_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	LockDate(ctx context.Context, date domain.Date) error
	GetSlotsByDate(ctx context.Context, date domain.Date) ([]domain.HourSlot, error)
	CreateBatch(ctx context.Context, batch *domain.ReservationBatch) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// DateLocker сериализует коммиты одной даты внутри процесса
type DateLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// ContactValidator проверяет контакт согласно режиму, выбранному при деплое
type ContactValidator interface {
	Normalize(raw string) (domain.Contact, error)
}

// NotificationDispatcher отправляет подтверждение после коммита
type NotificationDispatcher interface {
	Name() string
	Dispatch(ctx context.Context, batch *domain.ReservationBatch) error
}

// Metrics метрики бронирований
type Metrics interface {
	ObserveBooking(outcome string)
	AddReservations(n int)
	IncNotificationFailure(driver string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
