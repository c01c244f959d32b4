package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

func wheelBooking() *domain.Booking {
	return &domain.Booking{
		ID:             10,
		BookedDate:     testDate,
		SessionStart:   types.TimeString("10:00"),
		SessionEnd:     types.TimeString("11:30"),
		NumberOfPeople: 2,
		Status:         domain.StatusPending,
		RequiresWheel:  true,
	}
}

func TestAssignNoopWithoutWheels(t *testing.T) {
	claims := &fakeClaimRepo{}
	checker := newTestChecker(&fakeBookingRepo{}, claims, &fakeWheelRepo{wheels: makeWheels(8)})

	pkg := wheelPackage()
	pkg.RequiresWheel = false

	assigned, err := checker.Assign(context.Background(), domain.DefaultStudioConfig(), wheelBooking(), pkg, nil)
	require.NoError(t, err)
	assert.Empty(t, assigned)
	assert.Empty(t, claims.replaced)
}

func TestAssignAutoPicksLowestNumbers(t *testing.T) {
	claims := &fakeClaimRepo{claims: []*domain.WheelClaim{
		{BookingID: 99, WheelID: 1, WheelNumber: 1, StartTime: "10:00", EndTime: "11:30"},
	}}
	checker := newTestChecker(&fakeBookingRepo{}, claims, &fakeWheelRepo{wheels: makeWheels(4)})

	assigned, err := checker.Assign(context.Background(), domain.DefaultStudioConfig(), wheelBooking(), wheelPackage(), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, assigned)

	stored := claims.replaced[10]
	require.Len(t, stored, 2)
	assert.Equal(t, types.TimeString("10:00"), stored[0].StartTime)
	assert.Equal(t, types.TimeString("11:30"), stored[0].EndTime)
}

func TestAssignExplicitNumbersAllOrNothing(t *testing.T) {
	claims := &fakeClaimRepo{claims: []*domain.WheelClaim{
		{BookingID: 99, WheelID: 2, WheelNumber: 2, StartTime: "10:00", EndTime: "11:30"},
	}}
	wheels := makeWheels(4)
	wheels[2].Status = domain.WheelMaintenance

	checker := newTestChecker(&fakeBookingRepo{}, claims, &fakeWheelRepo{wheels: wheels})
	cfg := domain.DefaultStudioConfig()

	_, err := checker.Assign(context.Background(), cfg, wheelBooking(), wheelPackage(), []int{1, 9})
	assert.ErrorIs(t, err, ErrWheelUnknown)

	_, err = checker.Assign(context.Background(), cfg, wheelBooking(), wheelPackage(), []int{1, 3})
	assert.ErrorIs(t, err, ErrWheelNotBookable)

	_, err = checker.Assign(context.Background(), cfg, wheelBooking(), wheelPackage(), []int{1, 2})
	assert.ErrorIs(t, err, ErrWheelNotInPool)

	assert.Empty(t, claims.replaced, "failed assignment must not replace claims")

	assigned, err := checker.Assign(context.Background(), cfg, wheelBooking(), wheelPackage(), []int{1, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, assigned)
}

func TestAssignComboUsesShorterClaimWindow(t *testing.T) {
	claims := &fakeClaimRepo{}
	checker := newTestChecker(&fakeBookingRepo{}, claims, &fakeWheelRepo{wheels: makeWheels(4)})

	booking := wheelBooking()
	booking.SessionEnd = types.TimeString("14:00")

	combo := &domain.Package{
		ID:              2,
		Name:            "Wheel and Paint Combo",
		PackageType:     domain.PackageCombo,
		Duration:        domain.NewFixedDuration(1.5),
		RequiresWheel:   true,
		MaxParticipants: 8,
	}

	_, err := checker.Assign(context.Background(), domain.DefaultStudioConfig(), booking, combo, nil)
	require.NoError(t, err)

	stored := claims.replaced[10]
	require.Len(t, stored, 2)
	assert.Equal(t, types.TimeString("10:00"), stored[0].StartTime)
	assert.Equal(t, types.TimeString("11:30"), stored[0].EndTime)
}

func TestAssignReclaimsOwnWheels(t *testing.T) {
	// Повторное назначение: собственные заявки не блокируют круги
	claims := &fakeClaimRepo{claims: []*domain.WheelClaim{
		{BookingID: 10, WheelID: 1, WheelNumber: 1, StartTime: "10:00", EndTime: "11:30"},
		{BookingID: 10, WheelID: 2, WheelNumber: 2, StartTime: "10:00", EndTime: "11:30"},
	}}
	checker := newTestChecker(&fakeBookingRepo{}, claims, &fakeWheelRepo{wheels: makeWheels(2)})

	assigned, err := checker.Assign(context.Background(), domain.DefaultStudioConfig(), wheelBooking(), wheelPackage(), []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, assigned)
}
