package create_reservation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	commitReservation "github.com/m04kA/SMC-TurfBooking/internal/usecase/commit_reservation"
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
)

const (
	msgInvalidRequestBody = "invalid data format"
	msgOutOfWindow        = "date or slot is outside the booking window"
	msgSlotConflict       = "slot already reserved: %s"
)

type Handler struct {
	useCase CommitReservationUseCase
	logger  Logger
}

func NewHandler(useCase CommitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		respondBadRequest(w, CodeInvalidRequest, msgInvalidRequestBody, nil)
		return
	}

	if err := validation.Struct(&req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: %v", err)
		respondBadRequest(w, CodeInvalidRequest, msgInvalidRequestBody+": "+fieldMessages(err), nil)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var conflict *commitReservation.SlotConflictError

		switch {
		case errors.As(err, &conflict):
			slots := domain.SlotStrings(conflict.Slots)
			h.logger.Warn("POST /reservations - Slot conflict: date=%s, slots=%v", req.Date, slots)
			respondBadRequest(w, CodeSlotConflict, fmt.Sprintf(msgSlotConflict, strings.Join(slots, ", ")), slots)

		case errors.Is(err, commitReservation.ErrOutOfWindow):
			h.logger.Warn("POST /reservations - Out of window: date=%s, slots=%v", req.Date, req.Slots)
			respondBadRequest(w, CodeOutOfWindow, msgOutOfWindow, nil)

		case errors.Is(err, commitReservation.ErrInvalidRequest):
			h.logger.Warn("POST /reservations - Invalid request: %v", err)
			respondBadRequest(w, CodeInvalidRequest, msgInvalidRequestBody, nil)

		default:
			h.logger.Error("POST /reservations - Failed to save reservations: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservations saved: batch_id=%s, date=%s, notification=%s",
		result.Batch.ID, result.Batch.Date, result.Notification)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func respondBadRequest(w http.ResponseWriter, code, message string, conflicting []string) {
	handlers.RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:            message,
		Code:             code,
		ConflictingSlots: conflicting,
	})
}

func fieldMessages(err error) string {
	var fieldErrs validation.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		parts[i] = fe.Error()
	}
	return strings.Join(parts, "; ")
}
