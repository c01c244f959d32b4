package create_package

import (
	"errors"
	"net/http"

	"github.com/imarastudio/IMS-BookingService/internal/api/handlers"
	"github.com/imarastudio/IMS-BookingService/internal/service/packages"
	"github.com/imarastudio/IMS-BookingService/internal/service/packages/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgDuplicateCode      = "package code already exists"
)

type Handler struct {
	service PackageService
	logger  Logger
}

func NewHandler(service PackageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pkg, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrDuplicateCode):
			h.logger.Warn("POST /packages - Duplicate code: %s", req.Code)
			handlers.RespondConflict(w, msgDuplicateCode)

		case errors.Is(err, packages.ErrInvalidInput):
			h.logger.Warn("POST /packages - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /packages - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /packages - Package created: code=%s", pkg.Code)
	handlers.RespondJSON(w, http.StatusCreated, pkg)
}
