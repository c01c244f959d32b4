package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	bookingRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/booking"
	rulesRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/rules"
	"github.com/imarastudio/IMS-BookingService/internal/integrations/mailer"
)

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	ruleRepo     RuleRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	ruleRepo RuleRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		ruleRepo:     ruleRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирования.
// Отмена конечна: из cancelled переходов нет. Причина дописывается к заметкам.
// Заявки на круги не удаляются - отмененные бронирования выпадают из
// проверок доступности по фильтру статуса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: id=%d", req.BookingID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxCancellationReasonLen {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLen)
	}

	var result *domain.Booking

	// 2. Читаем, проверяем политику и отменяем в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: repository error for id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking %s in status %s cannot be cancelled",
				booking.Reference, booking.Status)
			return ErrAlreadyTerminal
		}

		// Окно отмены считается от начала собственной сессии
		noticeHours := uc.cancellationNoticeHours(txCtx)
		hoursUntil := booking.SessionStartAt().Sub(uc.timeProvider.Now()).Hours()
		if hoursUntil <= float64(noticeHours) {
			uc.logger.Warn("CancelBooking: booking %s starts in %.1fh, %dh notice required",
				booking.Reference, hoursUntil, noticeHours)
			return fmt.Errorf("%w: bookings can be cancelled up to %d hours before the session",
				ErrTooLate, noticeHours)
		}

		notes := appendReason(booking.Notes, req.Reason)
		if err := uc.bookingRepo.Cancel(txCtx, booking.ID, notes); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel %s: %v", booking.Reference, err)
			return fmt.Errorf("%w: failed to cancel: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		booking.Notes = notes
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: cancelled booking %s id=%d", result.Reference, result.ID)

	// 3. Уведомление после коммита: fire-and-forget
	uc.notifier.Dispatch(mailer.Notification{
		Kind:             mailer.KindBookingCancelled,
		To:               result.CustomerEmail,
		CustomerName:     result.CustomerName,
		BookingReference: result.Reference,
		PackageName:      result.PackageName,
		Date:             result.BookedDate.Format(domain.DateFormat),
		StartTime:        result.SessionStart.Format12H(),
		EndTime:          result.SessionEnd.Format12H(),
		NumPeople:        result.NumberOfPeople,
		Reason:           req.Reason,
	})

	return &Response{
		ID:        result.ID,
		Reference: result.Reference,
		Status:    string(result.Status),
	}, nil
}

// cancellationNoticeHours окно уведомления из активного правила;
// без активного правила действует значение по умолчанию
func (uc *UseCase) cancellationNoticeHours(ctx context.Context) int {
	rule, err := uc.ruleRepo.GetActive(ctx)
	if err != nil {
		if !errors.Is(err, rulesRepo.ErrRuleNotFound) {
			uc.logger.Warn("CancelBooking: failed to load booking rule, using default: %v", err)
		}
		return domain.DefaultPolicyNoticeHours
	}
	return rule.CancellationHours
}

// appendReason дописывает причину отмены к существующим заметкам
func appendReason(notes *string, reason string) *string {
	if reason == "" {
		return notes
	}

	line := "Cancellation reason: " + reason
	if notes == nil || *notes == "" {
		return &line
	}

	combined := *notes + "\n" + line
	return &combined
}
