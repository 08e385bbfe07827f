package get_blocked_slots

import (
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	getBlockedSlots "github.com/m04kA/SMC-TurfBooking/internal/usecase/get_blocked_slots"
)

// BlockedSlotsResponse HTTP response model
type BlockedSlotsResponse struct {
	Date         string   `json:"date"`
	BlockedSlots []string `json:"blockedSlots"`
	Degraded     bool     `json:"degraded,omitempty"`
	Warning      string   `json:"warning,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBlockedSlots.Response) *BlockedSlotsResponse {
	return &BlockedSlotsResponse{
		Date:         resp.Date.String(),
		BlockedSlots: domain.SlotStrings(resp.Slots),
		Degraded:     resp.Degraded,
		Warning:      resp.Warning,
	}
}
