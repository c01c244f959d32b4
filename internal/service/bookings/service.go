package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	bookingRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/booking"
	"github.com/imarastudio/IMS-BookingService/internal/integrations/mailer"
	"github.com/imarastudio/IMS-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	claimRepo    ClaimRepository
	configRepo   StudioConfigRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	claimRepo ClaimRepository,
	configRepo StudioConfigRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		claimRepo:    claimRepo,
		configRepo:   configRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID вместе с назначенными кругами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	wheels, err := s.assignedWheels(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking, wheels), nil
}

// GetByReference получает бронирование по номеру IM-YYYYMMDD-NNNN
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking reference=%s", reference)

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	wheels, err := s.assignedWheels(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking, wheels), nil
}

// GetCustomerBookings получает историю бронирований клиента по телефону,
// опционально дополненную совпадением по email
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for phone=%s", req.Phone)

	if req.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByCustomer(ctx, req.Phone, req.Email)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for phone=%s: %v", req.Phone, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for phone=%s", len(bookings), req.Phone)
	return models.FromDomainBookingList(bookings), nil
}

// GetDailyBookings получает бронирования на дату с опциональным фильтром по статусу
func (s *Service) GetDailyBookings(ctx context.Context, req *models.GetDailyBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetDailyBookings: fetching bookings for date=%s", req.Date)

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	filter := domain.DailyBookingsFilter{Date: date}
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetDailyBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, *req.Status)
		}
		filter.Statuses = []domain.PaymentStatus{status}
	}

	bookings, err := s.bookingRepo.GetByDateWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetDailyBookings: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: GetDailyBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDailyBookings: fetched %d bookings for date=%s", len(bookings), req.Date)
	return models.FromDomainBookingList(bookings), nil
}

// CheckIn отмечает прибытие клиента. Первый вызов также проставляет фактическое
// время начала сессии; повторные вызовы обновляют отметку прибытия.
func (s *Service) CheckIn(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("CheckIn: booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CheckIn: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckIn - repository error: %v", ErrInternal, err)
	}

	if booking.Status == domain.StatusCancelled {
		s.logger.Warn("CheckIn: booking %s is cancelled", booking.Reference)
		return nil, fmt.Errorf("%w: cannot check in a cancelled booking", ErrInvalidStatus)
	}

	now := s.timeProvider.Now()
	if err := s.bookingRepo.SetCheckin(ctx, id, now); err != nil {
		s.logger.Error("CheckIn: failed to set checkin for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckIn - failed to update: %v", ErrInternal, err)
	}

	booking.CheckinTime = &now
	if booking.ActualStartTime == nil {
		booking.ActualStartTime = &now
	}

	wheels, err := s.assignedWheels(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("CheckIn: booking %s checked in at %s", booking.Reference, now.Format("15:04"))
	return models.FromDomainBooking(booking, wheels), nil
}

// CheckOut отмечает уход клиента и завершает бронирование. Оплаченные
// бронирования переходят в completed, неоплаченные остаются в своём статусе:
// сам по себе чек-аут оплату не подразумевает, и перевод pending в completed
// скрыл бы задолженность. Завершение неоплаченного бронирования идёт через
// MarkPaid + CheckOut либо через UpdateStatus.
func (s *Service) CheckOut(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("CheckOut: booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CheckOut: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckOut - repository error: %v", ErrInternal, err)
	}

	if booking.CheckinTime == nil {
		s.logger.Warn("CheckOut: booking %s has no check-in", booking.Reference)
		return nil, fmt.Errorf("%w: booking must be checked in first", ErrInvalidStatus)
	}

	status := booking.Status
	if status == domain.StatusConfirmed {
		status = domain.StatusCompleted
	}

	now := s.timeProvider.Now()
	if err := s.bookingRepo.SetCheckout(ctx, id, now, status); err != nil {
		s.logger.Error("CheckOut: failed to set checkout for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckOut - failed to update: %v", ErrInternal, err)
	}

	booking.CheckoutTime = &now
	if booking.ActualEndTime == nil {
		booking.ActualEndTime = &now
	}
	booking.Status = status

	wheels, err := s.assignedWheels(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("CheckOut: booking %s checked out, status=%s", booking.Reference, status)
	return models.FromDomainBooking(booking, wheels), nil
}

// MarkPaid подтверждает оплату бронирования: pending -> confirmed.
// Клиенту отправляется письмо с подтверждением.
func (s *Service) MarkPaid(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("MarkPaid: booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("MarkPaid: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: MarkPaid - repository error: %v", ErrInternal, err)
	}

	if booking.Status != domain.StatusPending {
		s.logger.Warn("MarkPaid: booking %s is in status %s", booking.Reference, booking.Status)
		return nil, ErrNotPending
	}

	if err := s.bookingRepo.Confirm(ctx, id); err != nil {
		s.logger.Error("MarkPaid: failed to confirm booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: MarkPaid - failed to confirm: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed
	now := s.timeProvider.Now()
	booking.ConfirmedAt = &now

	wheels, err := s.assignedWheels(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("MarkPaid: booking %s confirmed", booking.Reference)

	s.notifier.Dispatch(mailer.Notification{
		Kind:             mailer.KindBookingConfirmed,
		To:               booking.CustomerEmail,
		CustomerName:     booking.CustomerName,
		BookingReference: booking.Reference,
		PackageName:      booking.PackageName,
		Date:             booking.BookedDate.Format(domain.DateFormat),
		StartTime:        booking.SessionStart.Format12H(),
		EndTime:          booking.SessionEnd.Format12H(),
		NumPeople:        booking.NumberOfPeople,
		TotalAmount:      booking.TotalAmount,
	})

	return models.FromDomainBooking(booking, wheels), nil
}

// UpdateStatus изменяет статус бронирования. Переходы из конечных статусов запрещены.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d, status=%s", id, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, req.Status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if booking.IsTerminal() {
		s.logger.Warn("UpdateStatus: booking %s is in terminal status %s", booking.Reference, booking.Status)
		return nil, ErrAlreadyTerminal
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("UpdateStatus: failed to update booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - failed to update: %v", ErrInternal, err)
	}

	booking.Status = status

	wheels, err := s.assignedWheels(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking %s moved to %s", booking.Reference, status)
	return models.FromDomainBooking(booking, wheels), nil
}

// assignedWheels возвращает номера кругов бронирования по возрастанию
func (s *Service) assignedWheels(ctx context.Context, bookingID int64) ([]int, error) {
	claims, err := s.claimRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		s.logger.Error("assignedWheels: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to load wheel claims: %v", ErrInternal, err)
	}

	wheels := make([]int, 0, len(claims))
	for _, c := range claims {
		wheels = append(wheels, c.WheelNumber)
	}
	return wheels, nil
}
