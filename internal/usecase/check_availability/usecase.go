package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	packagesRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/packages"
	"github.com/imarastudio/IMS-BookingService/internal/service/availability"
)

// UseCase use case проверки доступности слота: тонкая обертка над движком
// доступности. Чистый запрос, безопасен для конкурентных вызовов.
type UseCase struct {
	checker     AvailabilityChecker
	packageRepo PackageRepository
	configRepo  StudioConfigRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	checker AvailabilityChecker,
	packageRepo PackageRepository,
	configRepo StudioConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		checker:     checker,
		packageRepo: packageRepo,
		configRepo:  configRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: package=%d, date=%s, start=%s, people=%d",
		req.PackageID, req.Date.Format(domain.DateFormat), req.StartTime, req.NumPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пакет
	pkg, err := uc.packageRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, packagesRepo.ErrPackageNotFound) {
			uc.logger.Warn("CheckAvailability: package id=%d not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get package id=%d: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	if !pkg.IsActive {
		uc.logger.Warn("CheckAvailability: package id=%d is inactive", req.PackageID)
		return nil, ErrPackageInactive
	}

	// 3. Получаем конфигурацию студии
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get studio config: %v", err)
		return nil, fmt.Errorf("%w: failed to get studio config: %v", ErrInternal, err)
	}

	// 4. Запускаем движок доступности
	result, err := uc.checker.Check(ctx, cfg, &availability.CheckRequest{
		Date:      req.Date,
		StartTime: req.StartTime,
		Package:   pkg,
		NumPeople: req.NumPeople,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: checker error: %v", err)
		return nil, fmt.Errorf("%w: checker error: %v", ErrInternal, err)
	}

	resp := &Response{
		IsAvailable:     result.IsAvailable,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		PackageName:     result.PackageName,
		NumPeople:       result.NumPeople,
		DurationDisplay: result.DurationDisplay,
		WheelAvailable:  result.WheelAvailable,
	}
	if !result.IsAvailable {
		reason := result.Reason
		resp.Reason = &reason
	}

	uc.logger.Info("CheckAvailability: package=%d, date=%s, start=%s -> available=%t",
		req.PackageID, req.Date.Format(domain.DateFormat), req.StartTime, result.IsAvailable)

	return resp, nil
}
