package notifier

import (
	"context"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// Dispatcher доставляет подтверждение бронирования
type Dispatcher interface {
	Name() string
	Dispatch(ctx context.Context, batch *domain.ReservationBatch) error
	Close() error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
