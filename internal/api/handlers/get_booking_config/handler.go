package get_booking_config

import (
	"net/http"

	"github.com/m04kA/SMC-TurfBooking/internal/api/handlers"
)

type Handler struct {
	service ConfigService
}

func NewHandler(service ConfigService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/config
// Публичный endpoint: клиенту нужно знать режим контакта и горизонт
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Get())
}
