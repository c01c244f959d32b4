package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	bookingRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/booking"
	rulesRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/rules"
	"github.com/imarastudio/IMS-BookingService/internal/integrations/mailer"
	"github.com/imarastudio/IMS-BookingService/internal/service/availability"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	packageRepo  PackageRepository
	configRepo   StudioConfigRepository
	ruleRepo     RuleRepository
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
	ruleRepo RuleRepository,
	checker AvailabilityChecker,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		packageRepo:  packageRepo,
		configRepo:   configRepo,
		ruleRepo:     ruleRepo,
		checker:      checker,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования.
// Окно уведомления считается от СТАРОГО времени начала, не от нового.
// Перепроверка доступности исключает само бронирование: перенос на свой же
// слот всегда проходит. Перенос и переназначение кругов идут одной
// сериализуемой транзакцией.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: id=%d, new date=%s, new time=%s",
		req.BookingID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var assignedWheels []int
	var durationDisplay string

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: repository error for id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		if !booking.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: booking %s in status %s cannot be rescheduled",
				booking.Reference, booking.Status)
			return ErrCannotReschedule
		}

		// 2.2. Политика переноса: окно от существующего начала сессии
		noticeHours := uc.rescheduleNoticeHours(txCtx)
		hoursUntil := booking.SessionStartAt().Sub(uc.timeProvider.Now()).Hours()
		if hoursUntil <= float64(noticeHours) {
			uc.logger.Warn("RescheduleBooking: booking %s starts in %.1fh, %dh notice required",
				booking.Reference, hoursUntil, noticeHours)
			return fmt.Errorf("%w: bookings can be rescheduled up to %d hours before the session",
				ErrTooLate, noticeHours)
		}

		// 2.3. Пакет и конфигурация
		pkg, err := uc.packageRepo.GetByID(txCtx, booking.PackageID)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get package id=%d: %v", booking.PackageID, err)
			return fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
		}

		cfg, err := uc.configRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get studio config: %v", err)
			return fmt.Errorf("%w: failed to get studio config: %v", ErrInternal, err)
		}

		// 2.4. Проверка доступности нового слота, исключая само бронирование
		check, err := uc.checker.Check(txCtx, cfg, &availability.CheckRequest{
			Date:             req.NewDate,
			StartTime:        req.NewStartTime,
			Package:          pkg,
			NumPeople:        booking.NumberOfPeople,
			ExcludeBookingID: &booking.ID,
		})
		if err != nil {
			uc.logger.Error("RescheduleBooking: checker error: %v", err)
			return fmt.Errorf("%w: checker error: %v", ErrInternal, err)
		}
		if !check.IsAvailable {
			uc.logger.Warn("RescheduleBooking: new slot rejected for %s: %s", booking.Reference, check.Reason)
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, check.Reason)
		}

		// 2.5. Переносим и переназначаем круги на новое окно
		if err := uc.bookingRepo.UpdateSchedule(txCtx, booking.ID, req.NewDate, req.NewStartTime, check.EndTime); err != nil {
			uc.logger.Error("RescheduleBooking: failed to update schedule for %s: %v", booking.Reference, err)
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		booking.BookedDate = req.NewDate
		booking.SessionStart = req.NewStartTime
		booking.SessionEnd = check.EndTime

		wheels, err := uc.checker.Assign(txCtx, cfg, booking, pkg, req.WheelNumbers)
		if err != nil {
			uc.logger.Warn("RescheduleBooking: wheel assignment failed for %s: %v", booking.Reference, err)
			return fmt.Errorf("%w: %v", ErrWheelAssignment, err)
		}

		result = booking
		assignedWheels = wheels
		durationDisplay = check.DurationDisplay
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking %s moved to %s %s, wheels=%v",
		result.Reference, result.BookedDate.Format(domain.DateFormat), result.SessionStart, assignedWheels)

	// 3. Уведомление после коммита: fire-and-forget
	uc.notifier.Dispatch(mailer.Notification{
		Kind:             mailer.KindBookingRescheduled,
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
		Date:            result.BookedDate,
		StartTime:       result.SessionStart,
		EndTime:         result.SessionEnd,
		DurationDisplay: durationDisplay,
		PackageName:     result.PackageName,
		NumPeople:       result.NumberOfPeople,
		TotalAmount:     result.TotalAmount,
		Status:          string(result.Status),
		AssignedWheels:  assignedWheels,
	}, nil
}

// rescheduleNoticeHours окно уведомления из активного правила;
// без активного правила действует значение по умолчанию
func (uc *UseCase) rescheduleNoticeHours(ctx context.Context) int {
	rule, err := uc.ruleRepo.GetActive(ctx)
	if err != nil {
		if !errors.Is(err, rulesRepo.ErrRuleNotFound) {
			uc.logger.Warn("RescheduleBooking: failed to load booking rule, using default: %v", err)
		}
		return domain.DefaultPolicyNoticeHours
	}
	return rule.RescheduleHours
}
