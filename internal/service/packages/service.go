package packages

import (
	"context"
	"errors"
	"fmt"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	packageRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/packages"
	"github.com/imarastudio/IMS-BookingService/internal/service/packages/models"
)

// Service сервис для администрирования пакетов услуг
type Service struct {
	packageRepo PackageRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса пакетов
func NewService(packageRepo PackageRepository, logger Logger) *Service {
	return &Service{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// Create создает новый пакет. Пустой код генерируется автоматически
// по типу пакета: WHE-001, COM-002 и так далее.
func (s *Service) Create(ctx context.Context, req *models.CreatePackageRequest) (*models.PackageResponse, error) {
	s.logger.Info("Create: creating package name=%s, type=%s", req.Name, req.PackageType)

	pkg, err := s.buildPackage(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if pkg.Code == "" {
		code, err := s.generateCode(ctx, pkg.PackageType)
		if err != nil {
			return nil, err
		}
		pkg.Code = code
	}

	created, err := s.packageRepo.Create(ctx, pkg)
	if err != nil {
		if errors.Is(err, packageRepo.ErrDuplicateCode) {
			s.logger.Warn("Create: package code=%s already exists", pkg.Code)
			return nil, ErrDuplicateCode
		}
		s.logger.Error("Create: repository error for package code=%s: %v", pkg.Code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created package id=%d, code=%s", created.ID, created.Code)
	return models.FromDomainPackage(created), nil
}

// GetByID получает пакет по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PackageResponse, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("GetByID: package id=%d not found", id)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("GetByID: repository error for package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPackage(pkg), nil
}

// List возвращает пакеты студии. При activeOnly скрытые пакеты не попадают в ответ.
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.PackageListResponse, error) {
	var (
		pkgs []*domain.Package
		err  error
	)
	if activeOnly {
		pkgs, err = s.packageRepo.ListActive(ctx)
	} else {
		pkgs, err = s.packageRepo.List(ctx)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPackageList(pkgs), nil
}

// Update изменяет пакет. Код пакета неизменяем.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdatePackageRequest) (*models.PackageResponse, error) {
	s.logger.Info("Update: updating package id=%d", id)

	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Update: repository error for package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	applyUpdate(pkg, req)

	if err := pkg.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		s.logger.Error("Update: failed to save package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to save: %v", ErrInternal, err)
	}

	s.logger.Info("Update: package id=%d updated", id)
	return models.FromDomainPackage(pkg), nil
}

// buildPackage собирает и валидирует domain.Package из запроса на создание
func (s *Service) buildPackage(req *models.CreatePackageRequest) (*domain.Package, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	var duration domain.Duration
	switch domain.DurationMode(req.DurationMode) {
	case domain.DurationFixed:
		if req.FixedHours == nil {
			return nil, fmt.Errorf("%w: fixed_hours is required for fixed duration", ErrInvalidInput)
		}
		duration = domain.NewFixedDuration(*req.FixedHours)
	case domain.DurationUnlimited:
		duration = domain.NewUnlimitedDuration(req.MaxHours)
	default:
		return nil, fmt.Errorf("%w: unknown duration mode %q", ErrInvalidInput, req.DurationMode)
	}

	pkg := &domain.Package{
		Code:            req.Code,
		Name:            req.Name,
		PackageType:     domain.PackageType(req.PackageType),
		Description:     req.Description,
		Price:           req.Price,
		Duration:        duration,
		RequiresWheel:   req.RequiresWheel,
		ClayWeightKg:    req.ClayWeightKg,
		MaxParticipants: req.MaxParticipants,
		IsActive:        true,

		DisplayFeatures:   req.DisplayFeatures,
		DisplaySuggestion: req.DisplaySuggestion,
	}

	if err := pkg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return pkg, nil
}

// generateCode формирует следующий свободный код для типа пакета
func (s *Service) generateCode(ctx context.Context, t domain.PackageType) (string, error) {
	prefix := t.CodePrefix() + "-"
	count, err := s.packageRepo.CountByCodePrefix(ctx, prefix)
	if err != nil {
		s.logger.Error("generateCode: failed to count codes with prefix=%s: %v", prefix, err)
		return "", fmt.Errorf("%w: failed to generate package code: %v", ErrInternal, err)
	}
	return domain.FormatPackageCode(t, count+1), nil
}

func applyUpdate(pkg *domain.Package, req *models.UpdatePackageRequest) {
	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = req.Description
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.DurationMode != nil {
		switch domain.DurationMode(*req.DurationMode) {
		case domain.DurationFixed:
			var hours float64
			if req.FixedHours != nil {
				hours = *req.FixedHours
			}
			pkg.Duration = domain.NewFixedDuration(hours)
		case domain.DurationUnlimited:
			pkg.Duration = domain.NewUnlimitedDuration(req.MaxHours)
		default:
			pkg.Duration = domain.Duration{Mode: domain.DurationMode(*req.DurationMode)}
		}
	} else {
		if req.FixedHours != nil && pkg.Duration.IsFixed() {
			pkg.Duration.FixedHours = *req.FixedHours
		}
		if req.MaxHours != nil && !pkg.Duration.IsFixed() {
			pkg.Duration.MaxHours = req.MaxHours
		}
	}
	if req.RequiresWheel != nil {
		pkg.RequiresWheel = *req.RequiresWheel
	}
	if req.ClayWeightKg != nil {
		pkg.ClayWeightKg = *req.ClayWeightKg
	}
	if req.MaxParticipants != nil {
		pkg.MaxParticipants = *req.MaxParticipants
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	if req.DisplayFeatures != nil {
		pkg.DisplayFeatures = req.DisplayFeatures
	}
	if req.DisplaySuggestion != nil {
		pkg.DisplaySuggestion = req.DisplaySuggestion
	}
}
