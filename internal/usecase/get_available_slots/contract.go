package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/usecase/get_blocked_slots"
)

// BlockedSlotsProvider источник занятых слотов
type BlockedSlotsProvider interface {
	ForDate(ctx context.Context, date domain.Date) *get_blocked_slots.Response
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
