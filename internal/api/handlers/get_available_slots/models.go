package get_available_slots

import (
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TurfBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	Degraded       bool     `json:"degraded,omitempty"`
	Warning        string   `json:"warning,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Date:           resp.Date.String(),
		AvailableSlots: domain.SlotStrings(resp.Slots),
		Degraded:       resp.Degraded,
		Warning:        resp.Warning,
	}
}
