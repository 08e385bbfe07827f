package get_reservations

import (
	"context"

	"github.com/m04kA/SMC-TurfBooking/internal/service/reservations/models"
)

type ReservationsService interface {
	ListByDate(ctx context.Context, rawDate string) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
