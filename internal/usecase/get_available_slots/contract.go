package get_available_slots

import (
	"context"
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDateWithFilter(ctx context.Context, filter domain.DailyBookingsFilter) ([]*domain.Booking, error)
}

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
}

// WheelRepository интерфейс репозитория кругов
type WheelRepository interface {
	ListBookable(ctx context.Context) ([]*domain.Wheel, error)
}

// ClaimRepository интерфейс репозитория заявок на круги
type ClaimRepository interface {
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.WheelClaim, error)
}

// StudioConfigRepository интерфейс репозитория конфигурации студии
type StudioConfigRepository interface {
	Get(ctx context.Context) (*domain.StudioConfig, error)
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
