package get_blocked_slots

import (
	"context"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetSlotsByDate(ctx context.Context, date domain.Date) ([]domain.HourSlot, error)
}

// Metrics метрики деградации доступности
type Metrics interface {
	IncAvailabilityDegraded()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
