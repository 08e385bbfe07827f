package get_dates

import (
	"net/http"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
)

type Handler struct {
	useCase ListDatesUseCase
}

func NewHandler(useCase ListDatesUseCase) *Handler {
	return &Handler{useCase: useCase}
}

// Handle GET /api/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(h.useCase.Execute()))
}
