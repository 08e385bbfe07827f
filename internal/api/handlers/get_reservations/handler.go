package get_reservations

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/service/reservations"
)

const (
	msgDateMissing = "Date parameter is missing"
	msgInvalidDate = "invalid date, expected DD-MM-YYYY"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/reservations?date=DD-MM-YYYY
// Только чтение, контакты замаскированы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if strings.TrimSpace(date) == "" {
		h.logger.Warn("GET /reservations - Date parameter is missing")
		handlers.RespondBadRequest(w, msgDateMissing)
		return
	}

	result, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /reservations - Failed to list reservations: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
