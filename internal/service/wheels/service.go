package wheels

import (
	"context"
	"errors"
	"fmt"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	wheelRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/wheel"
	"github.com/imarastudio/IMS-BookingService/internal/service/wheels/models"
)

// Service сервис для администрирования гончарных кругов
type Service struct {
	wheelRepo WheelRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса кругов
func NewService(wheelRepo WheelRepository, logger Logger) *Service {
	return &Service{
		wheelRepo: wheelRepo,
		logger:    logger,
	}
}

// Create создает новый круг. Номер круга уникален и после создания не меняется.
func (s *Service) Create(ctx context.Context, req *models.CreateWheelRequest) (*models.WheelResponse, error) {
	s.logger.Info("Create: creating wheel number=%d", req.WheelNumber)

	if req.WheelNumber < 1 {
		return nil, fmt.Errorf("%w: wheel number must be positive", ErrInvalidInput)
	}

	wheel := &domain.Wheel{
		WheelNumber: req.WheelNumber,
		Name:        req.Name,
		Status:      domain.WheelAvailable,
		IsActive:    true,
		Notes:       req.Notes,
	}

	created, err := s.wheelRepo.Create(ctx, wheel)
	if err != nil {
		if errors.Is(err, wheelRepo.ErrDuplicateNumber) {
			s.logger.Warn("Create: wheel number=%d already exists", req.WheelNumber)
			return nil, ErrDuplicateNumber
		}
		s.logger.Error("Create: repository error for wheel number=%d: %v", req.WheelNumber, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created wheel id=%d, number=%d", created.ID, created.WheelNumber)
	return models.FromDomainWheel(created), nil
}

// GetByID получает круг по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.WheelResponse, error) {
	wheel, err := s.wheelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, wheelRepo.ErrWheelNotFound) {
			s.logger.Warn("GetByID: wheel id=%d not found", id)
			return nil, ErrWheelNotFound
		}
		s.logger.Error("GetByID: repository error for wheel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainWheel(wheel), nil
}

// List возвращает все круги студии, включая неактивные
func (s *Service) List(ctx context.Context) (*models.WheelListResponse, error) {
	wheels, err := s.wheelRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainWheelList(wheels), nil
}

// Update изменяет имя, статус, активность или заметки круга
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateWheelRequest) (*models.WheelResponse, error) {
	s.logger.Info("Update: updating wheel id=%d", id)

	wheel, err := s.wheelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, wheelRepo.ErrWheelNotFound) {
			return nil, ErrWheelNotFound
		}
		s.logger.Error("Update: repository error for wheel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Status != nil {
		status := domain.WheelStatus(*req.Status)
		if !status.Valid() {
			s.logger.Warn("Update: invalid status=%s for wheel id=%d", *req.Status, id)
			return nil, fmt.Errorf("%w: unknown wheel status %q", ErrInvalidInput, *req.Status)
		}
		wheel.Status = status
	}
	if req.Name != nil {
		wheel.Name = req.Name
	}
	if req.IsActive != nil {
		wheel.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		wheel.Notes = req.Notes
	}

	if err := s.wheelRepo.Update(ctx, wheel); err != nil {
		s.logger.Error("Update: failed to save wheel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to save: %v", ErrInternal, err)
	}

	s.logger.Info("Update: wheel id=%d updated, status=%s, active=%t", id, wheel.Status, wheel.IsActive)
	return models.FromDomainWheel(wheel), nil
}

// Delete удаляет круг. Круги с историей бронирований удалить нельзя,
// их следует деактивировать.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting wheel id=%d", id)

	if err := s.wheelRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, wheelRepo.ErrWheelNotFound):
			return ErrWheelNotFound
		case errors.Is(err, wheelRepo.ErrWheelInUse):
			s.logger.Warn("Delete: wheel id=%d has bookings", id)
			return ErrWheelInUse
		default:
			s.logger.Error("Delete: repository error for wheel id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: wheel id=%d deleted", id)
	return nil
}
