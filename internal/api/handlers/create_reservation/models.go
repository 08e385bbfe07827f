package create_reservation

import (
	"strings"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	commitReservation "github.com/m04kA/SMC-TurfBooking/internal/usecase/commit_reservation"
)

// Коды ошибок, по которым клиент решает: выбрать другой слот или повторить
const (
	CodeInvalidRequest = "invalid_request"
	CodeOutOfWindow    = "out_of_window"
	CodeSlotConflict   = "slot_conflict"
)

const msgReservationsSaved = "Reservations saved successfully"

// CreateReservationRequest HTTP request model.
// mobileNumber оставлен для старых клиентов и используется, если contact пуст.
type CreateReservationRequest struct {
	Date         string   `json:"date" validate:"required"`                      // "01-06-2024"
	Slots        []string `json:"slots" validate:"required,min=1,dive,required"` // ["11:00", "12:00"]
	Contact      string   `json:"contact" validate:"required_without=MobileNumber"`
	MobileNumber string   `json:"mobileNumber,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	Message      string   `json:"message"`
	BatchID      string   `json:"batchId"`
	Date         string   `json:"date"`
	Slots        []string `json:"slots"`
	Notification string   `json:"notification"`
	Warning      string   `json:"warning,omitempty"`
}

// ErrorResponse тело ответа 400
type ErrorResponse struct {
	Error            string   `json:"error"`
	Code             string   `json:"code"`
	ConflictingSlots []string `json:"conflictingSlots,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *commitReservation.Request {
	contact := r.Contact
	if strings.TrimSpace(contact) == "" {
		contact = r.MobileNumber
	}
	return &commitReservation.Request{
		Date:    r.Date,
		Slots:   r.Slots,
		Contact: contact,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *commitReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		Message:      msgReservationsSaved,
		BatchID:      resp.Batch.ID.String(),
		Date:         resp.Batch.Date.String(),
		Slots:        domain.SlotStrings(resp.Batch.Slots),
		Notification: resp.Notification,
		Warning:      resp.Warning,
	}
}
