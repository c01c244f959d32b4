package reschedule_booking

import (
	"context"
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/internal/integrations/mailer"
	"github.com/imarastudio/IMS-BookingService/internal/service/availability"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateSchedule(ctx context.Context, id int64, date time.Time, start, end types.TimeString) error
}

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
}

// StudioConfigRepository интерфейс репозитория конфигурации студии
type StudioConfigRepository interface {
	Get(ctx context.Context) (*domain.StudioConfig, error)
}

// RuleRepository интерфейс репозитория правил бронирования
type RuleRepository interface {
	GetActive(ctx context.Context) (*domain.BookingRule, error)
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
