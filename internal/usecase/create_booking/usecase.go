package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	packagesRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/packages"
	"github.com/imarastudio/IMS-BookingService/internal/integrations/mailer"
	"github.com/imarastudio/IMS-BookingService/internal/service/availability"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	packageRepo  PackageRepository
	configRepo   StudioConfigRepository
	checker      AvailabilityChecker
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	configRepo StudioConfigRepository,
	checker AvailabilityChecker,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		packageRepo:  packageRepo,
		configRepo:   configRepo,
		checker:      checker,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности, генерация номера, запись и назначение кругов идут
// одной сериализуемой транзакцией: два конкурентных запроса на последний
// круг не могут пройти оба, проигравший откатывается целиком.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: package=%d, date=%s, time=%s, people=%d, phone=%s",
		req.PackageID, req.Date.Format(domain.DateFormat), req.StartTime, req.NumPeople, req.CustomerPhone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	channel := req.BookingChannel
	if channel == "" {
		channel = domain.ChannelWebsite
	}

	// 2. Получаем пакет
	pkg, err := uc.packageRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, packagesRepo.ErrPackageNotFound) {
			uc.logger.Warn("CreateBooking: package id=%d not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("CreateBooking: failed to get package id=%d: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	if !pkg.IsActive {
		uc.logger.Warn("CreateBooking: package id=%d is inactive", req.PackageID)
		return nil, ErrPackageInactive
	}

	var result *domain.Booking
	var assignedWheels []int
	var durationDisplay string

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Конфигурация студии
		cfg, err := uc.configRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get studio config: %v", err)
			return fmt.Errorf("%w: failed to get studio config: %v", ErrInternal, err)
		}

		if !cfg.IsOpen() {
			uc.logger.Warn("CreateBooking: studio is in maintenance mode")
			if cfg.MaintenanceMessage != nil {
				return fmt.Errorf("%w: %s", ErrStudioMaintenance, *cfg.MaintenanceMessage)
			}
			return ErrStudioMaintenance
		}

		// 3.2. Полная проверка доступности (блокирует бронирования дня FOR UPDATE)
		check, err := uc.checker.Check(txCtx, cfg, &availability.CheckRequest{
			Date:      req.Date,
			StartTime: req.StartTime,
			Package:   pkg,
			NumPeople: req.NumPeople,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: checker error: %v", err)
			return fmt.Errorf("%w: checker error: %v", ErrInternal, err)
		}
		if !check.IsAvailable {
			uc.logger.Warn("CreateBooking: slot rejected: %s", check.Reason)
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, check.Reason)
		}

		// 3.3. Номер бронирования: порядковый счетчик дня под той же транзакцией
		prefix := domain.ReferenceDayPrefix(req.Date)
		count, err := uc.bookingRepo.CountByReferencePrefix(txCtx, prefix)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count day references: %v", err)
			return fmt.Errorf("%w: failed to count day references: %v", ErrInternal, err)
		}
		reference := domain.FormatReference(req.Date, count+1)

		// 3.4. Денежные поля
		packageAmount, bookingFee, totalAmount := domain.ComputeCharges(
			pkg.Price, req.NumPeople, cfg.BookingFeePerPerson,
		)

		// 3.5. Создаем бронирование с денормализацией данных пакета
		booking := &domain.Booking{
			Reference:        reference,
			CustomerName:     req.CustomerName,
			CustomerPhone:    req.CustomerPhone,
			CustomerEmail:    req.CustomerEmail,
			PackageID:        pkg.ID,
			NumberOfPeople:   req.NumPeople,
			BookedDate:       req.Date,
			SessionStart:     req.StartTime,
			SessionEnd:       check.EndTime,
			PackageName:      pkg.Name,
			RequiresWheel:    pkg.RequiresWheel,
			HasFixedDuration: pkg.Duration.IsFixed(),
			PackageAmount:    packageAmount,
			BookingFee:       bookingFee,
			TotalAmount:      totalAmount,
			Status:           domain.StatusPending,
			BookingChannel:   channel,
			SpecialRequests:  req.SpecialRequests,
			Notes:            req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.6. Назначаем круги: неудача откатывает всю транзакцию вместе с записью
		wheels, err := uc.checker.Assign(txCtx, cfg, created, pkg, req.WheelNumbers)
		if err != nil {
			uc.logger.Warn("CreateBooking: wheel assignment failed for %s: %v", reference, err)
			return fmt.Errorf("%w: %v", ErrWheelAssignment, err)
		}

		result = created
		assignedWheels = wheels
		durationDisplay = check.DurationDisplay
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking %s id=%d, wheels=%v",
		result.Reference, result.ID, assignedWheels)

	// 4. Уведомление после коммита: fire-and-forget
	uc.notifier.Dispatch(mailer.Notification{
		Kind:             mailer.KindBookingCreated,
		To:               result.CustomerEmail,
		CustomerName:     result.CustomerName,
		BookingReference: result.Reference,
		PackageName:      result.PackageName,
		Date:             result.BookedDate.Format(domain.DateFormat),
		StartTime:        result.SessionStart.Format12H(),
		EndTime:          result.SessionEnd.Format12H(),
		NumPeople:        result.NumberOfPeople,
		TotalAmount:      result.TotalAmount,
	})

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		CustomerEmail:   result.CustomerEmail,
		PackageID:       result.PackageID,
		PackageName:     result.PackageName,
		NumPeople:       result.NumberOfPeople,
		Date:            result.BookedDate,
		StartTime:       result.SessionStart,
		EndTime:         result.SessionEnd,
		DurationDisplay: durationDisplay,
		PackageAmount:   result.PackageAmount,
		BookingFee:      result.BookingFee,
		TotalAmount:     result.TotalAmount,
		Status:          string(result.Status),
		AssignedWheels:  assignedWheels,
		BookingChannel:  result.BookingChannel,
		SpecialRequests: result.SpecialRequests,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
