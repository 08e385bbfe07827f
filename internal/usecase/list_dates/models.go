package list_dates

import "github.com/m04kA/SMC-TurfBooking/internal/domain"

// Response модель ответа с горизонтом бронирования
type Response struct {
	Dates []DateSlots
}

// DateSlots дата и полный набор слотов дня
type DateSlots struct {
	Date  domain.Date
	Hours []domain.HourSlot
}
