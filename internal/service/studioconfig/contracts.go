package studioconfig

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации студии
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.StudioConfig, error)
	Update(ctx context.Context, config *domain.StudioConfig) (*domain.StudioConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
