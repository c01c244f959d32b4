package create_wheel

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/service/wheels/models"
)

type WheelService interface {
	Create(ctx context.Context, req *models.CreateWheelRequest) (*models.WheelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
