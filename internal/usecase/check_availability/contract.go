package check_availability

import (
	"context"
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/internal/service/availability"
)

// AvailabilityChecker интерфейс движка доступности
type AvailabilityChecker interface {
	Check(ctx context.Context, cfg *domain.StudioConfig, req *availability.CheckRequest) (*availability.Result, error)
}

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
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
