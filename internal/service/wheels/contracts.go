package wheels

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// WheelRepository интерфейс репозитория гончарных кругов
type WheelRepository interface {
	Create(ctx context.Context, wheel *domain.Wheel) (*domain.Wheel, error)
	GetByID(ctx context.Context, id int64) (*domain.Wheel, error)
	List(ctx context.Context) ([]*domain.Wheel, error)
	Update(ctx context.Context, wheel *domain.Wheel) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
