package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is one booked hour slot on one date.
// Rows are append-only: never updated, never deleted.
type Reservation struct {
	ID        int64
	BatchID   uuid.UUID // shared by all rows of one submission
	Contact   Contact
	Date      Date
	Slot      HourSlot
	CreatedAt time.Time
}

// ReservationBatch is the result of one successful commit:
// one or more slots on the same date for the same contact
type ReservationBatch struct {
	ID        uuid.UUID
	Date      Date
	Slots     []HourSlot
	Contact   Contact
	CreatedAt time.Time
}

// Reservations expands the batch into its rows
func (b *ReservationBatch) Reservations() []*Reservation {
	rows := make([]*Reservation, len(b.Slots))
	for i, slot := range b.Slots {
		rows[i] = &Reservation{
			BatchID:   b.ID,
			Contact:   b.Contact,
			Date:      b.Date,
			Slot:      slot,
			CreatedAt: b.CreatedAt,
		}
	}
	return rows
}
