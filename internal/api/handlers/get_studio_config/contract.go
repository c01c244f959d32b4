package get_studio_config

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/service/studioconfig/models"
)

type ConfigService interface {
	Get(ctx context.Context) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
