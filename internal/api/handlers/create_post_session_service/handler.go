package create_post_session_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/imarastudio/IMS-BookingService/internal/api/handlers"
	"github.com/imarastudio/IMS-BookingService/internal/service/extras"
	"github.com/imarastudio/IMS-BookingService/internal/service/extras/models"
)

const (
	msgInvalidBookingID   = "invalid booking ID"
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgCatalogNotFound    = "catalog entry not found"
)

type Handler struct {
	service ExtrasService
	logger  Logger
}

func NewHandler(service ExtrasService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/services - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.CreatePostSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.BookingID = bookingID

	svc, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, extras.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/services - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, extras.ErrCatalogEntryNotFound):
			h.logger.Warn("POST /bookings/{id}/services - Catalog entry not found: %v", err)
			handlers.RespondNotFound(w, msgCatalogNotFound)

		case errors.Is(err, extras.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/{id}/services - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/services - Service added: booking_id=%d, type=%s, total=%.2f",
		bookingID, svc.ServiceType, svc.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, svc)
}
