package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// EventReservationConfirmed тип события подтверждения
const EventReservationConfirmed = "reservation.confirmed"

// ConfirmationEvent тело уведомления для webhook и kafka
type ConfirmationEvent struct {
	Event     string    `json:"event"`
	BatchID   string    `json:"batchId"`
	Date      string    `json:"date"`
	Slots     []string  `json:"slots"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
	Message   string    `json:"message"`
}

// NewConfirmationEvent собирает событие из зафиксированного пакета
func NewConfirmationEvent(batch *domain.ReservationBatch) ConfirmationEvent {
	return ConfirmationEvent{
		Event:     EventReservationConfirmed,
		BatchID:   batch.ID.String(),
		Date:      batch.Date.String(),
		Slots:     domain.SlotStrings(batch.Slots),
		Contact:   batch.Contact.String(),
		CreatedAt: batch.CreatedAt.UTC(),
		Message:   ConfirmationText(batch),
	}
}

// ConfirmationSubject тема письма
func ConfirmationSubject(batch *domain.ReservationBatch) string {
	return fmt.Sprintf("Turf booking confirmed for %s", batch.Date)
}

// ConfirmationText текст подтверждения
func ConfirmationText(batch *domain.ReservationBatch) string {
	return fmt.Sprintf("Your turf booking on %s is confirmed for %s. Booking reference: %s.",
		batch.Date, strings.Join(domain.SlotStrings(batch.Slots), ", "), batch.ID)
}
