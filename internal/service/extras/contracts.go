package extras

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// ExtrasRepository интерфейс репозитория послесессионных услуг и прайс-каталога
type ExtrasRepository interface {
	GetFiringCharge(ctx context.Context, id int64) (*domain.FiringCharge, error)
	GetPaintingOption(ctx context.Context, id int64) (*domain.PaintingGlazingOption, error)
	GetExtraService(ctx context.Context, id int64) (*domain.ExtraService, error)
	CreatePostSession(ctx context.Context, svc *domain.PostSessionService) (*domain.PostSessionService, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.PostSessionService, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
