package check_availability

import (
	"errors"
	"net/http"

	"github.com/imarastudio/IMS-BookingService/internal/api/handlers"
	checkAvailability "github.com/imarastudio/IMS-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or start time, expected YYYY-MM-DD and HH:MM"
	msgPackageNotFound    = "package not found"
	msgPackageInactive    = "package is not available for booking"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Отказ в доступности - это не ошибка, а обычный ответ с is_available=false
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrPackageNotFound):
			h.logger.Warn("POST /availability/check - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, checkAvailability.ErrPackageInactive):
			h.logger.Warn("POST /availability/check - Package inactive: package_id=%d", req.PackageID)
			handlers.RespondBadRequest(w, msgPackageInactive)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /availability/check - Failed: package_id=%d, error=%v", req.PackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/check - package_id=%d, date=%s, available=%t",
		req.PackageID, req.Date, result.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, result)
}
