package get_reservations

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TurfBooking/internal/service/reservations"
	"github.com/m04kA/SMC-TurfBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-TurfBooking/pkg/logger"
)

type stubService struct {
	resp *models.ReservationListResponse
	err  error
}

func (s stubService) ListByDate(context.Context, string) (*models.ReservationListResponse, error) {
	return s.resp, s.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		target string
		svc    stubService
		status int
	}{
		{
			name:   "ok",
			target: "/api/reservations?date=01-06-2024",
			svc: stubService{resp: &models.ReservationListResponse{
				Date:         "01-06-2024",
				Reservations: []*models.ReservationResponse{{ID: 1, Slot: "11:00", Contact: "98******10"}},
			}},
			status: http.StatusOK,
		},
		{name: "missing date", target: "/api/reservations", status: http.StatusBadRequest},
		{
			name:   "invalid date",
			target: "/api/reservations?date=tomorrow",
			svc:    stubService{err: fmt.Errorf("%w: bad date", reservations.ErrInvalidInput)},
			status: http.StatusBadRequest,
		},
		{
			name:   "storage error",
			target: "/api/reservations?date=01-06-2024",
			svc:    stubService{err: fmt.Errorf("%w: %v", reservations.ErrInternal, errors.New("db down"))},
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.svc, logger.Nop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
