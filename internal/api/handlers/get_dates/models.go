package get_dates

import (
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	listDates "github.com/m04kA/SMC-TurfBooking/internal/usecase/list_dates"
)

// DatesResponse HTTP response model
type DatesResponse struct {
	Dates []DateResponse `json:"dates"`
}

// DateResponse дата и слоты дня
type DateResponse struct {
	Date  string   `json:"date"`  // "01-06-2024"
	Hours []string `json:"hours"` // ["11:00", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listDates.Response) *DatesResponse {
	result := &DatesResponse{Dates: make([]DateResponse, len(resp.Dates))}
	for i, d := range resp.Dates {
		result.Dates[i] = DateResponse{
			Date:  d.Date.String(),
			Hours: domain.SlotStrings(d.Hours),
		}
	}
	return result
}
