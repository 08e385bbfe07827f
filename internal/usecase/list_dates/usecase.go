package list_dates

import (
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// UseCase use case для получения дат горизонта бронирования
type UseCase struct {
	window       *domain.Window
	timeProvider TimeProvider
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(window *domain.Window) *UseCase {
	return &UseCase{
		window:       window,
		timeProvider: domain.SystemClock{},
	}
}

// Execute возвращает сегодняшнюю дату и следующие дни горизонта.
// Набор слотов одинаков для всех дат.
func (uc *UseCase) Execute() *Response {
	dates := uc.window.ListDates(uc.timeProvider.Now())
	hours := uc.window.ListHourSlots()

	resp := &Response{Dates: make([]DateSlots, len(dates))}
	for i, d := range dates {
		resp.Dates[i] = DateSlots{Date: d, Hours: hours}
	}
	return resp
}
