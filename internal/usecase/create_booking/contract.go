package create_booking

import (
	"context"
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/internal/integrations/mailer"
	"github.com/imarastudio/IMS-BookingService/internal/service/availability"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountByReferencePrefix(ctx context.Context, prefix string) (int, error)
}

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
}

// StudioConfigRepository интерфейс репозитория конфигурации студии
type StudioConfigRepository interface {
	Get(ctx context.Context) (*domain.StudioConfig, error)
}

// AvailabilityChecker интерфейс движка доступности
type AvailabilityChecker interface {
	Check(ctx context.Context, cfg *domain.StudioConfig, req *availability.CheckRequest) (*availability.Result, error)
	Assign(ctx context.Context, cfg *domain.StudioConfig, booking *domain.Booking, pkg *domain.Package, wheelNumbers []int) ([]int, error)
}

// Notifier интерфейс асинхронной отправки уведомлений
type Notifier interface {
	Dispatch(n mailer.Notification)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
