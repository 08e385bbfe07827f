package get_available_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	blocked      BlockedSlotsProvider
	window       *domain.Window
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(blocked BlockedSlotsProvider, window *domain.Window, logger Logger) *UseCase {
	return &UseCase{
		blocked:      blocked,
		window:       window,
		timeProvider: domain.SystemClock{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := uc.timeProvider.Now()
	blocked := uc.blocked.ForDate(ctx, date)

	slots := availableSlots(uc.window, date, blocked.Slots, now)
	uc.logger.Info("GetAvailableSlots: date=%s, blocked=%d, available=%d, degraded=%t",
		date, len(blocked.Slots), len(slots), blocked.Degraded)

	return &Response{
		Date:     date,
		Slots:    slots,
		Degraded: blocked.Degraded,
		Warning:  blocked.Warning,
	}, nil
}
