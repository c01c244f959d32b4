package packages

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	GetByCode(ctx context.Context, code string) (*domain.Package, error)
	List(ctx context.Context) ([]*domain.Package, error)
	ListActive(ctx context.Context) ([]*domain.Package, error)
	CountByCodePrefix(ctx context.Context, prefix string) (int, error)
	Update(ctx context.Context, pkg *domain.Package) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
