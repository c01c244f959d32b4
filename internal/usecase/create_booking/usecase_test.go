package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	packagesRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/packages"
	"github.com/imarastudio/IMS-BookingService/internal/integrations/mailer"
	"github.com/imarastudio/IMS-BookingService/internal/service/availability"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	created  *domain.Booking
	dayCount int
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 101
	booking.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) CountByReferencePrefix(_ context.Context, _ string) (int, error) {
	return f.dayCount, nil
}

type fakePackageRepo struct {
	pkg *domain.Package
}

func (f *fakePackageRepo) GetByID(_ context.Context, id int64) (*domain.Package, error) {
	if f.pkg == nil || f.pkg.ID != id {
		return nil, packagesRepo.ErrPackageNotFound
	}
	return f.pkg, nil
}

type fakeConfigRepo struct {
	cfg *domain.StudioConfig
}

func (f *fakeConfigRepo) Get(_ context.Context) (*domain.StudioConfig, error) {
	return f.cfg, nil
}

type fakeChecker struct {
	result      *availability.Result
	wheels      []int
	assignErr   error
	assignCalls int
}

func (f *fakeChecker) Check(_ context.Context, _ *domain.StudioConfig, _ *availability.CheckRequest) (*availability.Result, error) {
	return f.result, nil
}

func (f *fakeChecker) Assign(_ context.Context, _ *domain.StudioConfig, _ *domain.Booking, _ *domain.Package, _ []int) ([]int, error) {
	f.assignCalls++
	if f.assignErr != nil {
		return nil, f.assignErr
	}
	return f.wheels, nil
}

type fakeNotifier struct {
	sent []mailer.Notification
}

func (f *fakeNotifier) Dispatch(n mailer.Notification) {
	f.sent = append(f.sent, n)
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func activePackage() *domain.Package {
	return &domain.Package{
		ID:              1,
		Code:            "WHE-001",
		Name:            "Wheel Throwing Session",
		PackageType:     domain.PackageWheelThrowing,
		Price:           3500,
		Duration:        domain.NewFixedDuration(1.5),
		RequiresWheel:   true,
		MaxParticipants: 8,
		IsActive:        true,
	}
}

func availableResult() *availability.Result {
	return &availability.Result{
		IsAvailable:     true,
		Date:            testDate,
		StartTime:       "10:00",
		EndTime:         "11:30",
		DurationDisplay: "1 hour 30 minutes",
		WheelAvailable:  true,
		WheelsAvailable: 8,
		WheelsRequired:  2,
	}
}

func validRequest() *Request {
	return &Request{
		CustomerName:  "Wanjiku Kamau",
		CustomerPhone: "+254712345678",
		CustomerEmail: "wanjiku@example.com",
		PackageID:     1,
		NumPeople:     2,
		Date:          testDate,
		StartTime:     "10:00",
	}
}

func TestExecuteCreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{dayCount: 2}
	checker := &fakeChecker{result: availableResult(), wheels: []int{1, 2}}
	notifier := &fakeNotifier{}

	uc := NewUseCase(
		repo,
		&fakePackageRepo{pkg: activePackage()},
		&fakeConfigRepo{cfg: domain.DefaultStudioConfig()},
		checker,
		notifier,
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "IM-20260314-0003", resp.Reference)
	assert.Equal(t, types.TimeString("11:30"), resp.EndTime)
	assert.Equal(t, "1 hour 30 minutes", resp.DurationDisplay)
	assert.Equal(t, []int{1, 2}, resp.AssignedWheels)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.ChannelWebsite, resp.BookingChannel)

	// Деньги: пакет за человека плюс сбор за человека
	assert.Equal(t, 7000.0, resp.PackageAmount)
	assert.Equal(t, 2000.0, resp.BookingFee)
	assert.Equal(t, 9000.0, resp.TotalAmount)

	// Денормализация данных пакета в записи
	require.NotNil(t, repo.created)
	assert.Equal(t, "Wheel Throwing Session", repo.created.PackageName)
	assert.True(t, repo.created.RequiresWheel)
	assert.True(t, repo.created.HasFixedDuration)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, mailer.KindBookingCreated, notifier.sent[0].Kind)
	assert.Equal(t, "IM-20260314-0003", notifier.sent[0].BookingReference)
	assert.Equal(t, 9000.0, notifier.sent[0].TotalAmount)
}

func TestExecuteRejectsUnavailableSlot(t *testing.T) {
	checker := &fakeChecker{result: &availability.Result{
		IsAvailable: false,
		Reason:      "Only 1 of 8 wheels are free for this time",
	}}
	notifier := &fakeNotifier{}

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakePackageRepo{pkg: activePackage()},
		&fakeConfigRepo{cfg: domain.DefaultStudioConfig()},
		checker,
		notifier,
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Contains(t, err.Error(), "Only 1 of 8 wheels")
	assert.Empty(t, notifier.sent)
}

func TestExecuteRejectsMaintenanceMode(t *testing.T) {
	cfg := domain.DefaultStudioConfig()
	cfg.IsMaintenanceMode = true
	message := "Closed for kiln repairs until Monday"
	cfg.MaintenanceMessage = &message

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakePackageRepo{pkg: activePackage()},
		&fakeConfigRepo{cfg: cfg},
		&fakeChecker{result: availableResult()},
		&fakeNotifier{},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStudioMaintenance)
	assert.Contains(t, err.Error(), "kiln repairs")
}

func TestExecuteRejectsInactivePackage(t *testing.T) {
	pkg := activePackage()
	pkg.IsActive = false

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakePackageRepo{pkg: pkg},
		&fakeConfigRepo{cfg: domain.DefaultStudioConfig()},
		&fakeChecker{result: availableResult()},
		&fakeNotifier{},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPackageInactive)
}

func TestExecutePackageNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakePackageRepo{},
		&fakeConfigRepo{cfg: domain.DefaultStudioConfig()},
		&fakeChecker{result: availableResult()},
		&fakeNotifier{},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestExecuteWheelAssignmentFailureAborts(t *testing.T) {
	checker := &fakeChecker{
		result:    availableResult(),
		assignErr: availability.ErrWheelNotInPool,
	}
	notifier := &fakeNotifier{}

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakePackageRepo{pkg: activePackage()},
		&fakeConfigRepo{cfg: domain.DefaultStudioConfig()},
		checker,
		notifier,
		fakeTxManager{},
		nopLogger{},
	)

	req := validRequest()
	req.WheelNumbers = []int{3, 4}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrWheelAssignment)
	assert.Equal(t, 1, checker.assignCalls)
	assert.Empty(t, notifier.sent)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakePackageRepo{pkg: activePackage()},
		&fakeConfigRepo{cfg: domain.DefaultStudioConfig()},
		&fakeChecker{result: availableResult()},
		&fakeNotifier{},
		fakeTxManager{},
		nopLogger{},
	)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty name", func(r *Request) { r.CustomerName = "  " }},
		{"empty phone", func(r *Request) { r.CustomerPhone = "" }},
		{"bad email", func(r *Request) { r.CustomerEmail = "not-an-email" }},
		{"zero package", func(r *Request) { r.PackageID = 0 }},
		{"too many people", func(r *Request) { r.NumPeople = domain.MaxPeoplePerBooking + 1 }},
		{"zero people", func(r *Request) { r.NumPeople = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"bad start time", func(r *Request) { r.StartTime = "ten" }},
		{"unknown channel", func(r *Request) { r.BookingChannel = "carrier_pigeon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
