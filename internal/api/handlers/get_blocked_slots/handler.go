package get_blocked_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	getBlockedSlots "github.com/m04kA/SMC-TurfBooking/internal/usecase/get_blocked_slots"
)

// HeaderDegraded выставляется, когда занятые слоты не удалось прочитать
const HeaderDegraded = "X-Availability-Degraded"

const (
	msgDateMissing = "Date parameter is missing"
	msgInvalidDate = "invalid date, expected DD-MM-YYYY"
)

type Handler struct {
	useCase GetBlockedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetBlockedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/blockedSlots?date=DD-MM-YYYY
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if strings.TrimSpace(date) == "" {
		h.logger.Warn("GET /blockedSlots - Date parameter is missing")
		handlers.RespondBadRequest(w, msgDateMissing)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBlockedSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getBlockedSlots.ErrInvalidInput):
			h.logger.Warn("GET /blockedSlots - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /blockedSlots - Failed to get blocked slots: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Degraded {
		w.Header().Set(HeaderDegraded, "true")
	}
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
