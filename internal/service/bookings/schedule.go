package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/internal/service/bookings/models"
)

// DailySchedule строит расписание студии на дату: занятость каждого
// получасового интервала и число свободных кругов в нём.
// Учитываются только бронирования, занимающие ресурсы студии.
func (s *Service) DailySchedule(ctx context.Context, dateStr string) (*models.DailyScheduleResponse, error) {
	s.logger.Info("DailySchedule: building schedule for date=%s", dateStr)

	date, err := parseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		s.logger.Error("DailySchedule: failed to load studio config: %v", err)
		return nil, fmt.Errorf("%w: DailySchedule - failed to load config: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByDateWithFilter(ctx, domain.DailyBookingsFilter{
		Date:     date,
		Statuses: domain.CapacityStatuses,
	})
	if err != nil {
		s.logger.Error("DailySchedule: repository error for date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: DailySchedule - repository error: %v", ErrInternal, err)
	}

	claims, err := s.claimRepo.GetActiveByDate(ctx, date)
	if err != nil {
		s.logger.Error("DailySchedule: failed to load wheel claims for date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: DailySchedule - failed to load claims: %v", ErrInternal, err)
	}

	// Круги бронирований собираются один раз, чтобы не перечитывать заявки
	// для каждой карточки расписания
	wheelsByBooking := make(map[int64][]int)
	for _, c := range claims {
		wheelsByBooking[c.BookingID] = append(wheelsByBooking[c.BookingID], c.WheelNumber)
	}

	resp := &models.DailyScheduleResponse{
		Date:          date.Format(domain.DateFormat),
		OperatingTime: cfg.OperatingTime.String(),
		ClosingTime:   cfg.ClosingTime.String(),
		TotalWheels:   cfg.TotalWheels,
		TotalBookings: len(bookings),
		Slots:         []*models.ScheduleSlotView{},
	}

	for slotStart := cfg.OperatingTime; slotStart.IsBefore(cfg.ClosingTime); {
		slotEnd, err := slotStart.AddMinutes(domain.SlotIntervalMinutes)
		if err != nil || slotEnd.IsAfter(cfg.ClosingTime) {
			slotEnd = cfg.ClosingTime
		}

		view := &models.ScheduleSlotView{
			StartTime: slotStart.String(),
			EndTime:   slotEnd.String(),
			Bookings:  []*models.ScheduleBookingView{},
		}

		for _, b := range bookings {
			if b.SessionStart.IsBefore(slotEnd) && b.SessionEnd.IsAfter(slotStart) {
				view.Bookings = append(view.Bookings, scheduleBookingView(b, wheelsByBooking[b.ID]))
			}
		}

		inUse := make(map[int]struct{})
		for _, c := range claims {
			if c.Overlaps(slotStart, slotEnd) {
				inUse[c.WheelNumber] = struct{}{}
			}
		}
		view.WheelsInUse = len(inUse)
		view.WheelsFree = cfg.TotalWheels - view.WheelsInUse
		if view.WheelsFree < 0 {
			view.WheelsFree = 0
		}

		resp.Slots = append(resp.Slots, view)

		next, err := slotStart.AddMinutes(domain.SlotIntervalMinutes)
		if err != nil {
			break
		}
		slotStart = next
	}

	s.logger.Info("DailySchedule: built %d slots for date=%s, %d bookings",
		len(resp.Slots), dateStr, len(bookings))
	return resp, nil
}

func scheduleBookingView(b *domain.Booking, wheels []int) *models.ScheduleBookingView {
	if wheels == nil {
		wheels = []int{}
	}
	return &models.ScheduleBookingView{
		ID:               b.ID,
		BookingReference: b.Reference,
		CustomerName:     b.CustomerName,
		PackageName:      b.PackageName,
		NumberOfPeople:   b.NumberOfPeople,
		StartTime:        b.SessionStart.Format12H(),
		EndTime:          b.SessionEnd.Format12H(),
		Status:           string(b.Status),
		AssignedWheels:   wheels,
	}
}

// parseDate разбирает дату в формате YYYY-MM-DD
func parseDate(value string) (time.Time, error) {
	return time.Parse(domain.DateFormat, value)
}
