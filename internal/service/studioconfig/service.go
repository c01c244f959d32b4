package studioconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	configRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/studioconfig"
	"github.com/imarastudio/IMS-BookingService/internal/service/studioconfig/models"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// Service сервис для работы с конфигурацией студии
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Get возвращает текущую конфигурацию студии
func (s *Service) Get(ctx context.Context) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching studio config")

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Get: studio config not found")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// Update изменяет конфигурацию студии. Запрос частичный: незаданные поля
// сохраняют текущие значения.
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating studio config")

	if err := s.validate(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Update: failed to load current config: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	req.ApplyTo(cfg)

	updated, err := s.configRepo.Update(ctx, cfg)
	if err != nil {
		s.logger.Error("Update: failed to save config: %v", err)
		return nil, fmt.Errorf("%w: Update - failed to save: %v", ErrInternal, err)
	}

	s.logger.Info("Update: studio config updated, wheels=%d, hours=%s-%s",
		updated.TotalWheels, updated.OperatingTime, updated.ClosingTime)
	return models.FromDomainConfig(updated), nil
}

// validate проверяет согласованность частичного запроса
func (s *Service) validate(req *models.UpdateConfigRequest) error {
	if req.TotalWheels != nil && *req.TotalWheels < 0 {
		return fmt.Errorf("%w: total wheels must not be negative", ErrInvalidInput)
	}
	if req.BookingFeePerPerson != nil && *req.BookingFeePerPerson < 0 {
		return fmt.Errorf("%w: booking fee must not be negative", ErrInvalidInput)
	}
	if req.BufferMinutes != nil && *req.BufferMinutes < 0 {
		return fmt.Errorf("%w: buffer minutes must not be negative", ErrInvalidInput)
	}
	if req.MaxDailySessions != nil && *req.MaxDailySessions < 1 {
		return fmt.Errorf("%w: max daily sessions must be positive", ErrInvalidInput)
	}
	if req.WheelSessionDuration != nil && *req.WheelSessionDuration < domain.SlotIntervalMinutes {
		return fmt.Errorf("%w: wheel session duration must be at least %d minutes",
			ErrInvalidInput, domain.SlotIntervalMinutes)
	}

	var operating, closing *string
	if req.OperatingTime != nil {
		if err := validateTime(*req.OperatingTime); err != nil {
			return fmt.Errorf("%w: operating time: %v", ErrInvalidInput, err)
		}
		operating = req.OperatingTime
	}
	if req.ClosingTime != nil {
		if err := validateTime(*req.ClosingTime); err != nil {
			return fmt.Errorf("%w: closing time: %v", ErrInvalidInput, err)
		}
		closing = req.ClosingTime
	}
	if operating != nil && closing != nil && *closing <= *operating {
		return fmt.Errorf("%w: closing time must be after operating time", ErrInvalidInput)
	}

	return nil
}

func validateTime(value string) error {
	return types.TimeString(value).Validate()
}
