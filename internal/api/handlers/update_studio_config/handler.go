package update_studio_config

import (
	"errors"
	"net/http"

	"github.com/imarastudio/IMS-BookingService/internal/api/handlers"
	"github.com/imarastudio/IMS-BookingService/internal/service/studioconfig"
	"github.com/imarastudio/IMS-BookingService/internal/service/studioconfig/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgConfigNotFound     = "studio config not found"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/studio/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /studio/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cfg, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, studioconfig.ErrConfigNotFound):
			h.logger.Warn("PUT /studio/config - Config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, studioconfig.ErrInvalidInput):
			h.logger.Warn("PUT /studio/config - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /studio/config - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /studio/config - Config updated")
	handlers.RespondJSON(w, http.StatusOK, cfg)
}
