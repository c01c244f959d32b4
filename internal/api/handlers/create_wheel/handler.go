package create_wheel

import (
	"errors"
	"net/http"

	"github.com/imarastudio/IMS-BookingService/internal/api/handlers"
	"github.com/imarastudio/IMS-BookingService/internal/service/wheels"
	"github.com/imarastudio/IMS-BookingService/internal/service/wheels/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgDuplicateNumber    = "wheel number already exists"
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

// Handle POST /api/v1/wheels
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWheelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wheels - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	wheel, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, wheels.ErrDuplicateNumber):
			h.logger.Warn("POST /wheels - Duplicate number: %d", req.WheelNumber)
			handlers.RespondConflict(w, msgDuplicateNumber)

		case errors.Is(err, wheels.ErrInvalidInput):
			h.logger.Warn("POST /wheels - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /wheels - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wheels - Wheel created: number=%d", wheel.WheelNumber)
	handlers.RespondJSON(w, http.StatusCreated, wheel)
}
