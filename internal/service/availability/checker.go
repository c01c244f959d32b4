package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// Checker движок доступности: чистый запрос без побочных эффектов,
// безопасен для повторных и конкурентных вызовов. Конфигурация студии
// передается явно в каждый вызов.
type Checker struct {
	bookingRepo  BookingRepository
	claimRepo    ClaimRepository
	wheelRepo    WheelRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewChecker создает новый экземпляр движка доступности
func NewChecker(
	bookingRepo BookingRepository,
	claimRepo ClaimRepository,
	wheelRepo WheelRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Checker {
	return &Checker{
		bookingRepo:  bookingRepo,
		claimRepo:    claimRepo,
		wheelRepo:    wheelRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Check проверяет доступность слота для пакета и числа людей.
// Проверки выполняются строго по порядку, первая неудачная определяет причину:
// 1. Дата не в прошлом
// 2. Начало в рабочих часах студии
// 3. Число людей не превышает вместимость пакета
// 4. Вычисление конца сессии из политики длительности пакета
// 5. Для пакетов с кругами: хватает ли свободных кругов на окно [start, end)
// 6. Для пакетов с кругами: буферная проверка против сессий фиксированной длительности
// 7. Дневной лимит сессий
func (c *Checker) Check(ctx context.Context, cfg *domain.StudioConfig, req *CheckRequest) (*Result, error) {
	pkg := req.Package

	// 1. Дата не в прошлом
	now := c.timeProvider.Now()
	today := dateOnly(now)
	if req.Date.Before(today) {
		return reject(req, "Cannot book a date in the past"), nil
	}

	// 2. Начало в рабочих часах
	if !cfg.WithinOperatingHours(req.StartTime) {
		return reject(req, fmt.Sprintf(
			"Start time must be within operating hours (%s)", cfg.OperatingHoursDisplay(),
		)), nil
	}

	// 3. Вместимость пакета
	if req.NumPeople > pkg.MaxParticipants {
		return reject(req, fmt.Sprintf(
			"%s accommodates up to %d people", pkg.Name, pkg.MaxParticipants,
		)), nil
	}

	// 4. Конец сессии из политики длительности
	end := pkg.Duration.ResolveEndTime(req.StartTime, cfg.ClosingTime)

	wheelsAvailable := 0
	if pkg.RequiresWheel {
		// 5. Хватает ли свободных кругов на все окно
		pool, err := c.AvailableWheels(ctx, req.Date, req.StartTime, end, req.ExcludeBookingID)
		if err != nil {
			return nil, fmt.Errorf("%w: Check - wheel pool: %v", ErrInternal, err)
		}

		wheelsAvailable = len(pool)
		if wheelsAvailable > cfg.TotalWheels {
			wheelsAvailable = cfg.TotalWheels
		}

		if wheelsAvailable < req.NumPeople {
			result := reject(req, fmt.Sprintf(
				"Only %d of %d wheels are free for this time", wheelsAvailable, cfg.TotalWheels,
			))
			result.EndTime = end
			result.WheelsAvailable = wheelsAvailable
			result.WheelsRequired = req.NumPeople
			return result, nil
		}

		// 6. Буферная проверка против сессий фиксированной длительности
		conflict, err := c.bufferConflict(ctx, cfg, req.Date, req.StartTime, end, req.ExcludeBookingID)
		if err != nil {
			return nil, fmt.Errorf("%w: Check - buffer check: %v", ErrInternal, err)
		}
		if conflict {
			return reject(req, fmt.Sprintf(
				"Too close to another session: %d minutes are needed between sessions", cfg.BufferMinutes,
			)), nil
		}
	}

	// 7. Дневной лимит сессий
	dayBookings, err := c.bookingRepo.GetByDateWithFilter(ctx, domain.DailyBookingsFilter{
		Date:     req.Date,
		Statuses: domain.CapacityStatuses,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Check - daily bookings: %v", ErrInternal, err)
	}

	count := 0
	for _, b := range dayBookings {
		if req.ExcludeBookingID != nil && b.ID == *req.ExcludeBookingID {
			continue
		}
		count++
	}
	if count >= cfg.MaxDailySessions {
		return reject(req, "The studio is fully booked for this date"), nil
	}

	return &Result{
		IsAvailable:     true,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         end,
		PackageName:     pkg.Name,
		NumPeople:       req.NumPeople,
		DurationDisplay: domain.FormatDurationMinutes(req.StartTime.MinutesUntil(end)),
		WheelAvailable:  true,
		WheelsAvailable: wheelsAvailable,
		WheelsRequired:  req.NumPeople,
	}, nil
}

// bufferConflict проверяет, что окно [start, end), расширенное на буфер с обеих
// сторон, не пересекается ни с одной confirmed/pending сессией фиксированной
// длительности на ту же дату. Сессии с открытым концом из проверки исключены:
// их фактический конец неизвестен заранее.
func (c *Checker) bufferConflict(
	ctx context.Context,
	cfg *domain.StudioConfig,
	date time.Time,
	start, end types.TimeString,
	excludeBookingID *int64,
) (bool, error) {
	fixedBookings, err := c.bookingRepo.GetByDateWithFilter(ctx, domain.DailyBookingsFilter{
		Date:              date,
		Statuses:          domain.CapacityStatuses,
		FixedDurationOnly: true,
	})
	if err != nil {
		return false, err
	}

	expandedStart := start.AddMinutesClamped(-cfg.BufferMinutes)
	expandedEnd := end.AddMinutesClamped(cfg.BufferMinutes)

	for _, b := range fixedBookings {
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if b.SessionStart.IsBefore(expandedEnd) && b.SessionEnd.IsAfter(expandedStart) {
			return true, nil
		}
	}

	return false, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
