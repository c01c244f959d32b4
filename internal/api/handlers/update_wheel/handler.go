package update_wheel

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/imarastudio/IMS-BookingService/internal/api/handlers"
	"github.com/imarastudio/IMS-BookingService/internal/service/wheels"
	"github.com/imarastudio/IMS-BookingService/internal/service/wheels/models"
)

const (
	msgInvalidWheelID     = "invalid wheel ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "wheel not found"
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

// Handle PATCH /api/v1/wheels/{wheelId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	wheelID, err := strconv.ParseInt(vars["wheelId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /wheels/{id} - Invalid wheel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWheelID)
		return
	}

	var req models.UpdateWheelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /wheels/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	wheel, err := h.service.Update(r.Context(), wheelID, &req)
	if err != nil {
		switch {
		case errors.Is(err, wheels.ErrWheelNotFound):
			h.logger.Warn("PATCH /wheels/{id} - Wheel not found: wheel_id=%d", wheelID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wheels.ErrInvalidInput):
			h.logger.Warn("PATCH /wheels/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /wheels/{id} - Failed: wheel_id=%d, error=%v", wheelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /wheels/{id} - Wheel updated: number=%d, status=%s", wheel.WheelNumber, wheel.Status)
	handlers.RespondJSON(w, http.StatusOK, wheel)
}
