package create_post_session_service

import (
	"context"

	"github.com/imarastudio/IMS-BookingService/internal/service/extras/models"
)

type ExtrasService interface {
	Create(ctx context.Context, req *models.CreatePostSessionRequest) (*models.PostSessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
