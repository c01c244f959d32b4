package get_daily_bookings

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetDailyBookings(ctx context.Context, req *models.GetDailyBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
