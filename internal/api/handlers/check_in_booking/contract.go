package check_in_booking

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	CheckIn(ctx context.Context, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
