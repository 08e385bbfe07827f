package get_available_slots

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blockedHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/get_blocked_slots"
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TurfBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-TurfBooking/pkg/logger"
)

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (s stubUseCase) Execute(context.Context, *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return s.resp, s.err
}

func TestHandle_ReturnsAvailableSlots(t *testing.T) {
	h := NewHandler(stubUseCase{resp: &getAvailableSlots.Response{
		Date:     domain.NewDate(2024, time.June, 1),
		Slots:    []domain.HourSlot{20, 21},
		Degraded: true,
	}}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/availableSlots?date=01-06-2024", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get(blockedHandler.HeaderDegraded))
	assert.JSONEq(t, `{"date":"01-06-2024","availableSlots":["20:00","21:00"],"degraded":true}`, rec.Body.String())
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(stubUseCase{err: fmt.Errorf("%w: bad", getAvailableSlots.ErrInvalidInput)}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/availableSlots?date=32-01-2024", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
