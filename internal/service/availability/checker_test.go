package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// --- Fakes ---

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByDateWithFilter(_ context.Context, filter domain.DailyBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if !b.BookedDate.Equal(filter.Date) {
			continue
		}
		if len(filter.Statuses) > 0 && !statusIn(b.Status, filter.Statuses) {
			continue
		}
		if filter.RequiresWheelOnly && !b.RequiresWheel {
			continue
		}
		if filter.FixedDurationOnly && !b.HasFixedDuration {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func statusIn(s domain.PaymentStatus, list []domain.PaymentStatus) bool {
	for _, v := range list {
		if s == v {
			return true
		}
	}
	return false
}

type fakeClaimRepo struct {
	claims   []*domain.WheelClaim
	replaced map[int64][]*domain.WheelClaim
}

func (f *fakeClaimRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.WheelClaim, error) {
	return f.claims, nil
}

func (f *fakeClaimRepo) GetByBookingID(_ context.Context, bookingID int64) ([]*domain.WheelClaim, error) {
	var out []*domain.WheelClaim
	for _, c := range f.claims {
		if c.BookingID == bookingID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClaimRepo) ReplaceForBooking(_ context.Context, bookingID int64, claims []*domain.WheelClaim) error {
	if f.replaced == nil {
		f.replaced = make(map[int64][]*domain.WheelClaim)
	}
	f.replaced[bookingID] = claims
	return nil
}

type fakeWheelRepo struct {
	wheels []*domain.Wheel
}

func (f *fakeWheelRepo) ListBookable(_ context.Context) ([]*domain.Wheel, error) {
	var out []*domain.Wheel
	for _, w := range f.wheels {
		if w.IsBookable() {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWheelRepo) GetByNumbers(_ context.Context, numbers []int) ([]*domain.Wheel, error) {
	var out []*domain.Wheel
	for _, w := range f.wheels {
		for _, n := range numbers {
			if w.WheelNumber == n {
				out = append(out, w)
			}
		}
	}
	return out, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Helpers ---

var testDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func makeWheels(n int) []*domain.Wheel {
	wheels := make([]*domain.Wheel, 0, n)
	for i := 1; i <= n; i++ {
		wheels = append(wheels, &domain.Wheel{
			ID:          int64(i),
			WheelNumber: i,
			Status:      domain.WheelAvailable,
			IsActive:    true,
		})
	}
	return wheels
}

func wheelPackage() *domain.Package {
	return &domain.Package{
		ID:              1,
		Name:            "Wheel Throwing Session",
		PackageType:     domain.PackageWheelThrowing,
		Price:           3500,
		Duration:        domain.NewFixedDuration(1.5),
		RequiresWheel:   true,
		MaxParticipants: 8,
	}
}

func newTestChecker(bookings *fakeBookingRepo, claims *fakeClaimRepo, wheels *fakeWheelRepo) *Checker {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return NewChecker(bookings, claims, wheels, &fixedTime{now: now}, nopLogger{})
}

// --- Check ---

func TestCheckRejectsPastDate(t *testing.T) {
	checker := newTestChecker(&fakeBookingRepo{}, &fakeClaimRepo{}, &fakeWheelRepo{wheels: makeWheels(8)})

	result, err := checker.Check(context.Background(), domain.DefaultStudioConfig(), &CheckRequest{
		Date:      time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		Package:   wheelPackage(),
		NumPeople: 2,
	})

	require.NoError(t, err)
	assert.False(t, result.IsAvailable)
	assert.Equal(t, "Cannot book a date in the past", result.Reason)
}

func TestCheckRejectsOutsideOperatingHours(t *testing.T) {
	checker := newTestChecker(&fakeBookingRepo{}, &fakeClaimRepo{}, &fakeWheelRepo{wheels: makeWheels(8)})

	result, err := checker.Check(context.Background(), domain.DefaultStudioConfig(), &CheckRequest{
		Date:      testDate,
		StartTime: "07:30",
		Package:   wheelPackage(),
		NumPeople: 2,
	})

	require.NoError(t, err)
	assert.False(t, result.IsAvailable)
	assert.Contains(t, result.Reason, "operating hours")
}

func TestCheckRejectsTooManyPeople(t *testing.T) {
	checker := newTestChecker(&fakeBookingRepo{}, &fakeClaimRepo{}, &fakeWheelRepo{wheels: makeWheels(8)})

	pkg := wheelPackage()
	pkg.MaxParticipants = 4

	result, err := checker.Check(context.Background(), domain.DefaultStudioConfig(), &CheckRequest{
		Date:      testDate,
		StartTime: "10:00",
		Package:   pkg,
		NumPeople: 5,
	})

	require.NoError(t, err)
	assert.False(t, result.IsAvailable)
	assert.Contains(t, result.Reason, "up to 4 people")
}

func TestCheckRejectsWhenWheelsExhausted(t *testing.T) {
	// 8 кругов, 6 заняты пересекающимися заявками: свободно 2, нужно 3
	claims := make([]*domain.WheelClaim, 0, 6)
	for i := 1; i <= 6; i++ {
		claims = append(claims, &domain.WheelClaim{
			BookingID:   int64(100 + i),
			WheelID:     int64(i),
			WheelNumber: i,
			StartTime:   "10:00",
			EndTime:     "11:30",
		})
	}

	checker := newTestChecker(&fakeBookingRepo{}, &fakeClaimRepo{claims: claims}, &fakeWheelRepo{wheels: makeWheels(8)})

	result, err := checker.Check(context.Background(), domain.DefaultStudioConfig(), &CheckRequest{
		Date:      testDate,
		StartTime: "10:00",
		Package:   wheelPackage(),
		NumPeople: 3,
	})

	require.NoError(t, err)
	assert.False(t, result.IsAvailable)
	assert.Equal(t, 2, result.WheelsAvailable)
	assert.Equal(t, 3, result.WheelsRequired)
	assert.Contains(t, result.Reason, "Only 2 of 8 wheels")
}

func TestCheckRejectsBufferConflict(t *testing.T) {
	// Существующая сессия 10:00-11:30, буфер 15 минут: старт 11:40 слишком близко
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
		ID:               1,
		BookedDate:       testDate,
		SessionStart:     "10:00",
		SessionEnd:       "11:30",
		Status:           domain.StatusConfirmed,
		RequiresWheel:    true,
		HasFixedDuration: true,
	}}}

	checker := newTestChecker(bookings, &fakeClaimRepo{}, &fakeWheelRepo{wheels: makeWheels(8)})

	result, err := checker.Check(context.Background(), domain.DefaultStudioConfig(), &CheckRequest{
		Date:      testDate,
		StartTime: "11:40",
		Package:   wheelPackage(),
		NumPeople: 2,
	})

	require.NoError(t, err)
	assert.False(t, result.IsAvailable)
	assert.Contains(t, result.Reason, "15 minutes are needed between sessions")

	// На 15 минут позже конфликта уже нет
	result, err = checker.Check(context.Background(), domain.DefaultStudioConfig(), &CheckRequest{
		Date:      testDate,
		StartTime: "11:45",
		Package:   wheelPackage(),
		NumPeople: 2,
	})

	require.NoError(t, err)
	assert.True(t, result.IsAvailable)
}

func TestCheckIgnoresBufferForOpenEndedSessions(t *testing.T) {
	// Сессия с открытым концом не участвует в буферной проверке
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
		ID:               1,
		BookedDate:       testDate,
		SessionStart:     "10:00",
		SessionEnd:       "18:00",
		Status:           domain.StatusConfirmed,
		RequiresWheel:    false,
		HasFixedDuration: false,
	}}}

	checker := newTestChecker(bookings, &fakeClaimRepo{}, &fakeWheelRepo{wheels: makeWheels(8)})

	result, err := checker.Check(context.Background(), domain.DefaultStudioConfig(), &CheckRequest{
		Date:      testDate,
		StartTime: "10:05",
		Package:   wheelPackage(),
		NumPeople: 2,
	})

	require.NoError(t, err)
	assert.True(t, result.IsAvailable)
}

func TestCheckRejectsDailyCap(t *testing.T) {
	cfg := domain.DefaultStudioConfig()
	cfg.MaxDailySessions = 2

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, BookedDate: testDate, SessionStart: "08:00", SessionEnd: "09:00", Status: domain.StatusConfirmed},
		{ID: 2, BookedDate: testDate, SessionStart: "09:00", SessionEnd: "10:00", Status: domain.StatusPending},
		{ID: 3, BookedDate: testDate, SessionStart: "11:00", SessionEnd: "12:00", Status: domain.StatusCancelled},
	}}

	pkg := wheelPackage()
	pkg.RequiresWheel = false

	checker := newTestChecker(bookings, &fakeClaimRepo{}, &fakeWheelRepo{wheels: makeWheels(8)})

	result, err := checker.Check(context.Background(), cfg, &CheckRequest{
		Date:      testDate,
		StartTime: "14:00",
		Package:   pkg,
		NumPeople: 2,
	})

	require.NoError(t, err)
	assert.False(t, result.IsAvailable)
	assert.Equal(t, "The studio is fully booked for this date", result.Reason)
}

func TestCheckExcludedBookingFreesItsSlot(t *testing.T) {
	cfg := domain.DefaultStudioConfig()
	cfg.MaxDailySessions = 1

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
		ID:               42,
		BookedDate:       testDate,
		SessionStart:     "10:00",
		SessionEnd:       "11:30",
		Status:           domain.StatusConfirmed,
		RequiresWheel:    true,
		HasFixedDuration: true,
	}}}
	claims := &fakeClaimRepo{claims: []*domain.WheelClaim{
		{BookingID: 42, WheelID: 1, WheelNumber: 1, StartTime: "10:00", EndTime: "11:30"},
		{BookingID: 42, WheelID: 2, WheelNumber: 2, StartTime: "10:00", EndTime: "11:30"},
	}}

	checker := newTestChecker(bookings, claims, &fakeWheelRepo{wheels: makeWheels(2)})

	// Перенос на собственный слот: без исключения всё занято самим бронированием
	excludeID := int64(42)
	result, err := checker.Check(context.Background(), cfg, &CheckRequest{
		Date:             testDate,
		StartTime:        "10:00",
		Package:          wheelPackage(),
		NumPeople:        2,
		ExcludeBookingID: &excludeID,
	})

	require.NoError(t, err)
	assert.True(t, result.IsAvailable)
}

func TestCheckSuccessResolvesEndTime(t *testing.T) {
	checker := newTestChecker(&fakeBookingRepo{}, &fakeClaimRepo{}, &fakeWheelRepo{wheels: makeWheels(8)})

	result, err := checker.Check(context.Background(), domain.DefaultStudioConfig(), &CheckRequest{
		Date:      testDate,
		StartTime: "10:00",
		Package:   wheelPackage(),
		NumPeople: 2,
	})

	require.NoError(t, err)
	assert.True(t, result.IsAvailable)
	assert.Equal(t, types.TimeString("11:30"), result.EndTime)
	assert.Equal(t, "1 hour 30 minutes", result.DurationDisplay)
	assert.True(t, result.WheelAvailable)
	assert.Equal(t, 8, result.WheelsAvailable)
	assert.Equal(t, 2, result.WheelsRequired)
}

// --- AvailableWheels ---

func TestAvailableWheelsSkipsUnbookableAndClaimed(t *testing.T) {
	wheels := makeWheels(4)
	wheels[1].IsActive = false
	wheels[2].Status = domain.WheelMaintenance

	claims := &fakeClaimRepo{claims: []*domain.WheelClaim{
		{BookingID: 7, WheelID: 1, WheelNumber: 1, StartTime: "10:00", EndTime: "11:00"},
	}}

	checker := newTestChecker(&fakeBookingRepo{}, claims, &fakeWheelRepo{wheels: wheels})

	pool, err := checker.AvailableWheels(context.Background(), testDate, "10:30", "11:30", nil)
	require.NoError(t, err)
	require.Len(t, pool, 1)
	assert.Equal(t, 4, pool[0].WheelNumber)

	// Непересекающееся окно возвращает занятый круг в пул
	pool, err = checker.AvailableWheels(context.Background(), testDate, "12:00", "13:00", nil)
	require.NoError(t, err)
	assert.Len(t, pool, 2)
}
