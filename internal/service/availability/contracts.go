package availability

import (
	"context"
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDateWithFilter(ctx context.Context, filter domain.DailyBookingsFilter) ([]*domain.Booking, error)
}

// ClaimRepository интерфейс репозитория заявок на круги
type ClaimRepository interface {
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.WheelClaim, error)
	GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.WheelClaim, error)
	ReplaceForBooking(ctx context.Context, bookingID int64, claims []*domain.WheelClaim) error
}

// WheelRepository интерфейс репозитория кругов
type WheelRepository interface {
	ListBookable(ctx context.Context) ([]*domain.Wheel, error)
	GetByNumbers(ctx context.Context, numbers []int) ([]*domain.Wheel, error)
}

// TimeProvider интерфейс источника текущего времени (подменяется в тестах)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
