package commit_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// validateRequest проверяет форму запроса и возвращает разобранные значения.
// Слоты возвращаются отсортированными.
func validateRequest(
	req *Request,
	window *domain.Window,
	contactValidator ContactValidator,
) (domain.Date, []domain.HourSlot, domain.Contact, error) {
	if req == nil {
		return domain.Date{}, nil, "", fmt.Errorf("%w: request is required", ErrInvalidRequest)
	}

	if strings.TrimSpace(req.Date) == "" {
		return domain.Date{}, nil, "", fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return domain.Date{}, nil, "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if len(req.Slots) == 0 {
		return domain.Date{}, nil, "", fmt.Errorf("%w: at least one slot is required", ErrInvalidRequest)
	}
	if len(req.Slots) > domain.MaxSlotsPerBooking {
		return domain.Date{}, nil, "", fmt.Errorf("%w: at most %d slots per request", ErrInvalidRequest, domain.MaxSlotsPerBooking)
	}

	slots := make([]domain.HourSlot, 0, len(req.Slots))
	seen := make(map[domain.HourSlot]struct{}, len(req.Slots))
	for _, raw := range req.Slots {
		slot, err := domain.ParseHourSlot(raw)
		if err != nil {
			return domain.Date{}, nil, "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		if !window.HasSlot(slot) {
			return domain.Date{}, nil, "", fmt.Errorf("%w: slot %s is not offered", ErrInvalidRequest, slot)
		}
		if _, dup := seen[slot]; dup {
			return domain.Date{}, nil, "", fmt.Errorf("%w: slot %s is duplicated", ErrInvalidRequest, slot)
		}
		seen[slot] = struct{}{}
		slots = append(slots, slot)
	}
	domain.SortSlots(slots)

	contact, err := contactValidator.Normalize(req.Contact)
	if err != nil {
		return domain.Date{}, nil, "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return date, slots, contact, nil
}

// validateWindow проверяет, что дата входит в горизонт бронирования по серверному времени
func validateWindow(window *domain.Window, date domain.Date, now time.Time) error {
	if !window.Contains(date, now) {
		return fmt.Errorf("%w: %s is not within %s..%s",
			ErrOutOfWindow, date, window.Today(now), window.LastDate(now))
	}
	return nil
}

// validateNotStarted отклоняет слоты сегодняшнего дня, которые уже начались.
// Вызывается после проверки конфликтов: занятый слот всегда сообщается как конфликт.
func validateNotStarted(window *domain.Window, date domain.Date, slots []domain.HourSlot, now time.Time) error {
	for _, slot := range slots {
		if window.IsElapsed(date, slot, now) {
			return fmt.Errorf("%w: slot %s on %s has already started", ErrOutOfWindow, slot, date)
		}
	}
	return nil
}
