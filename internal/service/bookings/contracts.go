package bookings

import (
	"context"
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/internal/integrations/mailer"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	GetByCustomer(ctx context.Context, phone string, email *string) ([]*domain.Booking, error)
	GetByDateWithFilter(ctx context.Context, filter domain.DailyBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	Confirm(ctx context.Context, id int64) error
	SetCheckin(ctx context.Context, id int64, at time.Time) error
	SetCheckout(ctx context.Context, id int64, at time.Time, status domain.PaymentStatus) error
}

// ClaimRepository интерфейс репозитория заявок на круги
type ClaimRepository interface {
	GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.WheelClaim, error)
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.WheelClaim, error)
}

// StudioConfigRepository интерфейс репозитория конфигурации студии
type StudioConfigRepository interface {
	Get(ctx context.Context) (*domain.StudioConfig, error)
}

// Notifier интерфейс асинхронной отправки уведомлений
type Notifier interface {
	Dispatch(n mailer.Notification)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
