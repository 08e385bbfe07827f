package get_available_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	blockedHandler "github.com/m04kA/SMC-TurfBooking/internal/api/handlers/get_blocked_slots"
	getAvailableSlots "github.com/m04kA/SMC-TurfBooking/internal/usecase/get_available_slots"
)

const (
	msgDateMissing = "Date parameter is missing"
	msgInvalidDate = "invalid date, expected DD-MM-YYYY"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availableSlots?date=DD-MM-YYYY
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if strings.TrimSpace(date) == "" {
		h.logger.Warn("GET /availableSlots - Date parameter is missing")
		handlers.RespondBadRequest(w, msgDateMissing)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availableSlots - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /availableSlots - Failed to get available slots: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Degraded {
		w.Header().Set(blockedHandler.HeaderDegraded, "true")
	}
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
