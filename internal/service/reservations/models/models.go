package models

import (
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// ReservationResponse бронирование в листинге; контакт замаскирован
type ReservationResponse struct {
	ID        int64     `json:"id"`
	BatchID   string    `json:"batchId"`
	Date      string    `json:"date"`
	Slot      string    `json:"slot"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse список бронирований на дату
type ReservationListResponse struct {
	Date         string                 `json:"date"`
	Reservations []*ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в response, скрывая контакт
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID,
		BatchID:   r.BatchID.String(),
		Date:      r.Date.String(),
		Slot:      r.Slot.String(),
		Contact:   r.Contact.Masked(),
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReservations конвертирует список domain моделей
func FromDomainReservations(date domain.Date, rows []*domain.Reservation) *ReservationListResponse {
	result := &ReservationListResponse{
		Date:         date.String(),
		Reservations: make([]*ReservationResponse, len(rows)),
	}
	for i, r := range rows {
		result.Reservations[i] = FromDomainReservation(r)
	}
	return result
}
