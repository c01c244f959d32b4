package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestDurationValidate(t *testing.T) {
	assert.NoError(t, NewFixedDuration(1.5).Validate())
	assert.NoError(t, NewUnlimitedDuration(float64Ptr(4)).Validate())

	assert.ErrorIs(t, NewFixedDuration(0).Validate(), ErrFixedHoursRequired)

	d := NewFixedDuration(2)
	d.MaxHours = float64Ptr(4)
	assert.ErrorIs(t, d.Validate(), ErrFixedWithMaxHours)

	assert.ErrorIs(t, NewUnlimitedDuration(nil).Validate(), ErrMaxHoursRequired)
	assert.ErrorIs(t, NewUnlimitedDuration(float64Ptr(0)).Validate(), ErrMaxHoursRequired)

	bad := Duration{Mode: "flexible"}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidDurationMode)
}

func TestDurationResolveEndTime(t *testing.T) {
	closing := types.TimeString("18:00")

	fixed := NewFixedDuration(1.5)
	assert.Equal(t, types.TimeString("11:30"), fixed.ResolveEndTime("10:00", closing))

	// Фиксированная длительность упирается в закрытие студии
	assert.Equal(t, closing, fixed.ResolveEndTime("17:30", closing))

	withCeiling := NewUnlimitedDuration(float64Ptr(4))
	assert.Equal(t, types.TimeString("14:00"), withCeiling.ResolveEndTime("10:00", closing))
	assert.Equal(t, closing, withCeiling.ResolveEndTime("16:00", closing))

	open := Duration{Mode: DurationUnlimited}
	assert.Equal(t, closing, open.ResolveEndTime("10:00", closing))
}

func TestDurationDisplay(t *testing.T) {
	assert.Equal(t, "1 hour 30 minutes", NewFixedDuration(1.5).Display())
	assert.Equal(t, "Up to 4 hours", NewUnlimitedDuration(float64Ptr(4)).Display())
	assert.Equal(t, "Unlimited duration until studio closing time", Duration{Mode: DurationUnlimited}.Display())
}

func TestPackageValidate(t *testing.T) {
	pkg := &Package{
		Name:            "Wheel Throwing Session",
		PackageType:     PackageWheelThrowing,
		Price:           3500,
		Duration:        NewFixedDuration(1.5),
		RequiresWheel:   true,
		MaxParticipants: 8,
	}
	assert.NoError(t, pkg.Validate())

	pkg.PackageType = "yoga"
	assert.Error(t, pkg.Validate())

	pkg.PackageType = PackageWheelThrowing
	pkg.MaxParticipants = 0
	assert.Error(t, pkg.Validate())

	pkg.MaxParticipants = MaxPackageParticipants + 1
	assert.Error(t, pkg.Validate())
}

func TestPackageCanAccommodate(t *testing.T) {
	pkg := &Package{MaxParticipants: 4}

	assert.True(t, pkg.CanAccommodate(1))
	assert.True(t, pkg.CanAccommodate(4))
	assert.False(t, pkg.CanAccommodate(0))
	assert.False(t, pkg.CanAccommodate(5))
}

func TestFormatPackageCode(t *testing.T) {
	assert.Equal(t, "WHE-003", FormatPackageCode(PackageWheelThrowing, 3))
	assert.Equal(t, "HAN-001", FormatPackageCode(PackageHandBuilding, 1))
	assert.Equal(t, "COM-012", FormatPackageCode(PackageCombo, 12))
}

func TestFormatDurationMinutes(t *testing.T) {
	assert.Equal(t, "0 minutes", FormatDurationMinutes(0))
	assert.Equal(t, "30 minutes", FormatDurationMinutes(30))
	assert.Equal(t, "1 hour", FormatDurationMinutes(60))
	assert.Equal(t, "1 hour 30 minutes", FormatDurationMinutes(90))
	assert.Equal(t, "2 hours 1 minute", FormatDurationMinutes(121))
}
