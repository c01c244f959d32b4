package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	packagesRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/packages"
)

// UseCase use case для получения доступных слотов бронирования на дату
type UseCase struct {
	bookingRepo  BookingRepository
	packageRepo  PackageRepository
	wheelRepo    WheelRepository
	claimRepo    ClaimRepository
	configRepo   StudioConfigRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	wheelRepo WheelRepository,
	claimRepo ClaimRepository,
	configRepo StudioConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		packageRepo:  packageRepo,
		wheelRepo:    wheelRepo,
		claimRepo:    claimRepo,
		configRepo:   configRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: package=%d, date=%s, people=%d",
		req.PackageID, req.Date.Format(domain.DateFormat), req.NumPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пакет
	pkg, err := uc.packageRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, packagesRepo.ErrPackageNotFound) {
			uc.logger.Warn("GetAvailableSlots: package id=%d not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get package id=%d: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	if !pkg.IsActive {
		uc.logger.Warn("GetAvailableSlots: package id=%d is inactive", req.PackageID)
		return nil, ErrPackageInactive
	}

	// 3. Получаем конфигурацию студии
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get studio config: %v", err)
		return nil, fmt.Errorf("%w: failed to get studio config: %v", ErrInternal, err)
	}

	emptyResponse := &Response{
		Date:        req.Date,
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		NumPeople:   req.NumPeople,
		Slots:       []domain.Slot{},
	}

	// 4. Прошедшие даты и режим обслуживания: пустой список, не ошибка
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}
	if !cfg.IsOpen() {
		uc.logger.Info("GetAvailableSlots: studio is in maintenance mode")
		return emptyResponse, nil
	}

	// 5. Снимок дня: сессии фиксированной длительности нужны любому пакету
	// (буферная проверка), круги и заявки - только требующим круг
	snap := &daySnapshot{cfg: cfg}

	snap.fixedBookings, err = uc.bookingRepo.GetByDateWithFilter(ctx, domain.DailyBookingsFilter{
		Date:              req.Date,
		Statuses:          domain.CapacityStatuses,
		FixedDurationOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if pkg.RequiresWheel {
		snap.wheels, err = uc.wheelRepo.ListBookable(ctx)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to list wheels: %v", err)
			return nil, fmt.Errorf("%w: failed to list wheels: %v", ErrInternal, err)
		}

		snap.claims, err = uc.claimRepo.GetActiveByDate(ctx, req.Date)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get wheel claims: %v", err)
			return nil, fmt.Errorf("%w: failed to get wheel claims: %v", ErrInternal, err)
		}
	}

	// 6. Обходим кандидатные слоты
	slots := generateSlots(snap, pkg, req.NumPeople)

	uc.logger.Info("GetAvailableSlots: generated %d slots for package=%d, date=%s",
		len(slots), req.PackageID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:        req.Date,
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		NumPeople:   req.NumPeople,
		Slots:       slots,
	}, nil
}
