package update_wheel

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/service/wheels/models"
)

type WheelService interface {
	Update(ctx context.Context, id int64, req *models.UpdateWheelRequest) (*models.WheelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
