package get_blocked_slots

import "github.com/m04kA/SMC-TurfBooking/internal/domain"

// DegradedWarning текст предупреждения, когда хранилище недоступно
const DegradedWarning = "blocked slots are temporarily unavailable; availability may be overstated"

// Request модель запроса занятых слотов
type Request struct {
	Date string // Дата в формате DD-MM-YYYY
}

// Response модель ответа со занятыми слотами.
// Degraded == true означает, что хранилище не ответило и Slots пуст не потому, что дата свободна.
type Response struct {
	Date     domain.Date
	Slots    []domain.HourSlot
	Degraded bool
	Warning  string
}
