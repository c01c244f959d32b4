package update_package

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/service/packages/models"
)

type PackageService interface {
	Update(ctx context.Context, id int64, req *models.UpdatePackageRequest) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
