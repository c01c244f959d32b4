package delete_wheel

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/imarastudio/IMS-BookingService/internal/api/handlers"
	"github.com/imarastudio/IMS-BookingService/internal/service/wheels"
)

const (
	msgInvalidWheelID = "invalid wheel ID"
	msgNotFound       = "wheel not found"
	msgWheelInUse     = "wheel has bookings; deactivate it instead"
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

// Handle DELETE /api/v1/wheels/{wheelId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	wheelID, err := strconv.ParseInt(vars["wheelId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /wheels/{id} - Invalid wheel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWheelID)
		return
	}

	if err := h.service.Delete(r.Context(), wheelID); err != nil {
		switch {
		case errors.Is(err, wheels.ErrWheelNotFound):
			h.logger.Warn("DELETE /wheels/{id} - Wheel not found: wheel_id=%d", wheelID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wheels.ErrWheelInUse):
			h.logger.Warn("DELETE /wheels/{id} - Wheel in use: wheel_id=%d", wheelID)
			handlers.RespondConflict(w, msgWheelInUse)

		default:
			h.logger.Error("DELETE /wheels/{id} - Failed: wheel_id=%d, error=%v", wheelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /wheels/{id} - Wheel deleted: wheel_id=%d", wheelID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
