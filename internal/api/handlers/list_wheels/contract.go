package list_wheels

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/service/wheels/models"
)

type WheelService interface {
	List(ctx context.Context) (*models.WheelListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
