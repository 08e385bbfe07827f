package get_blocked_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// UseCase use case для получения занятых слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute возвращает занятые слоты на дату.
// Ошибка хранилища не возвращается наружу: ответ пустой и помечен как Degraded.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetBlockedSlots: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return uc.ForDate(ctx, date), nil
}

// ForDate возвращает занятые слоты на уже разобранную дату
func (uc *UseCase) ForDate(ctx context.Context, date domain.Date) *Response {
	slots, err := uc.reservationRepo.GetSlotsByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetBlockedSlots: date=%s, storage failed, serving empty set: %v", date, err)
		uc.metrics.IncAvailabilityDegraded()
		return &Response{
			Date:     date,
			Slots:    []domain.HourSlot{},
			Degraded: true,
			Warning:  DegradedWarning,
		}
	}

	domain.SortSlots(slots)
	return &Response{Date: date, Slots: slots}
}
