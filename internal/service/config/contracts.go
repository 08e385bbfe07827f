package config

import (
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// Window горизонт бронирования и набор слотов
type Window interface {
	Location() *time.Location
	HorizonDays() int
	ListHourSlots() []domain.HourSlot
	Today(now time.Time) domain.Date
	LastDate(now time.Time) domain.Date
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}
