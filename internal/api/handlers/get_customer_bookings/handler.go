package get_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/imarastudio/IMS-BookingService/internal/api/handlers"
	"github.com/imarastudio/IMS-BookingService/internal/service/bookings"
	"github.com/imarastudio/IMS-BookingService/internal/service/bookings/models"
)

const msgMissingPhone = "phone query parameter is required"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/bookings?phone=%2B254700000000&email=jane@example.com
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	phone := query.Get("phone")
	if phone == "" {
		h.logger.Warn("GET /customers/bookings - Missing phone parameter")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	req := &models.GetCustomerBookingsRequest{Phone: phone}
	if email := query.Get("email"); email != "" {
		req.Email = &email
	}

	result, err := h.service.GetCustomerBookings(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /customers/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /customers/bookings - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/bookings - %d bookings for phone=%s", result.Total, phone)
	handlers.RespondJSON(w, http.StatusOK, result)
}
