package create_booking

import (
	"errors"
	"net/http"

	"github.com/imarastudio/IMS-BookingService/internal/api/handlers"
	createBooking "github.com/imarastudio/IMS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or start time, expected YYYY-MM-DD and HH:MM"
	msgPackageNotFound    = "package not found"
	msgPackageInactive    = "package is not available for booking"
	msgStudioMaintenance  = "the studio is temporarily closed for maintenance"
	msgSlotNotAvailable   = "the selected time slot is not available"
	msgWheelAssignment    = "the requested wheels cannot be assigned"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrPackageInactive):
			h.logger.Warn("POST /bookings - Package inactive: package_id=%d", req.PackageID)
			handlers.RespondBadRequest(w, msgPackageInactive)

		case errors.Is(err, createBooking.ErrStudioMaintenance):
			h.logger.Warn("POST /bookings - Studio in maintenance mode")
			handlers.RespondError(w, http.StatusServiceUnavailable, err.Error())

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: package_id=%d, date=%s, time=%s",
				req.PackageID, req.Date, req.StartTime)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, createBooking.ErrWheelAssignment):
			h.logger.Warn("POST /bookings - Wheel assignment failed: %v", err)
			handlers.RespondConflict(w, msgWheelAssignment)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: package_id=%d, error=%v",
				req.PackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: reference=%s, package_id=%d, date=%s",
		result.Reference, req.PackageID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
