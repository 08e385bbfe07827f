package get_available_slots

import "github.com/m04kA/SMC-TurfBooking/internal/domain"

// Request модель запроса на получение доступных слотов
type Request struct {
	Date string // Дата в формате DD-MM-YYYY
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     domain.Date
	Slots    []domain.HourSlot // Свободные слоты по возрастанию
	Degraded bool              // Занятые слоты не удалось получить
	Warning  string
}
