package list_wheels

import (
	"net/http"

	"github.com/imarastudio/IMS-BookingService/internal/api/handlers"
)

type Handler struct {
	service WheelService
	logger  Logger
}

func NewHandler(service WheelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/wheels
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /wheels - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
