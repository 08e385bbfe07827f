package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// availableSlots возвращает слоты дня за вычетом занятых и уже начавшихся
func availableSlots(window *domain.Window, date domain.Date, blocked []domain.HourSlot, now time.Time) []domain.HourSlot {
	result := make([]domain.HourSlot, 0)

	// Вне горизонта бронировать нельзя
	if !window.Contains(date, now) {
		return result
	}

	blockedSet := make(map[domain.HourSlot]struct{}, len(blocked))
	for _, s := range blocked {
		blockedSet[s] = struct{}{}
	}

	for _, slot := range window.ListHourSlots() {
		if _, taken := blockedSet[slot]; taken {
			continue
		}
		if window.IsElapsed(date, slot, now) {
			continue
		}
		result = append(result, slot)
	}

	return result
}
