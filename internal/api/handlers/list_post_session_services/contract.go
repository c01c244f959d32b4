package list_post_session_services

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/service/extras/models"
)

type ExtrasService interface {
	ListByBooking(ctx context.Context, bookingID int64) (*models.PostSessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
