package cancel_booking

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID               int64  `json:"id"`
	BookingReference string `json:"booking_reference"`
	Status           string `json:"status"`
}
