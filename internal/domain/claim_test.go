package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

func TestWheelClaimOverlaps(t *testing.T) {
	claim := &WheelClaim{
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:30"),
	}

	assert.True(t, claim.Overlaps("10:30", "12:00"), "partial overlap at the end")
	assert.True(t, claim.Overlaps("09:00", "10:30"), "partial overlap at the start")
	assert.True(t, claim.Overlaps("10:15", "11:00"), "window inside claim")
	assert.True(t, claim.Overlaps("09:00", "13:00"), "claim inside window")
	assert.True(t, claim.Overlaps("10:00", "11:30"), "exact match")

	assert.False(t, claim.Overlaps("11:30", "13:00"), "adjacent after")
	assert.False(t, claim.Overlaps("08:00", "10:00"), "adjacent before")
	assert.False(t, claim.Overlaps("13:00", "14:00"), "disjoint")
}

func TestResolveClaimWindow(t *testing.T) {
	cfg := DefaultStudioConfig()
	booking := &Booking{
		SessionStart: types.TimeString("10:00"),
		SessionEnd:   types.TimeString("14:00"),
	}

	// Чисто гончарный пакет: заявка на всё окно сессии
	wheelOnly := &Package{PackageType: PackageWheelThrowing, Duration: NewUnlimitedDuration(float64Ptr(4))}
	start, end := ResolveClaimWindow(booking, wheelOnly, cfg)
	assert.Equal(t, types.TimeString("10:00"), start)
	assert.Equal(t, types.TimeString("14:00"), end)

	// Комбо с фиксированной гончарной частью: заявка короче сессии
	combo := &Package{PackageType: PackageCombo, Duration: NewFixedDuration(1.5)}
	start, end = ResolveClaimWindow(booking, combo, cfg)
	assert.Equal(t, types.TimeString("10:00"), start)
	assert.Equal(t, types.TimeString("11:30"), end)

	// Открытая длительность: стандартное окно круга из конфигурации
	hobbyist := &Package{PackageType: PackageHobbyist, Duration: NewUnlimitedDuration(float64Ptr(8))}
	start, end = ResolveClaimWindow(booking, hobbyist, cfg)
	assert.Equal(t, types.TimeString("10:00"), start)
	assert.Equal(t, types.TimeString("11:00"), end)

	// Окно заявки никогда не выходит за закрытие
	late := &Booking{
		SessionStart: types.TimeString("17:30"),
		SessionEnd:   types.TimeString("18:00"),
	}
	_, end = ResolveClaimWindow(late, combo, cfg)
	assert.Equal(t, cfg.ClosingTime, end)
}

func TestStudioConfigWithinOperatingHours(t *testing.T) {
	cfg := DefaultStudioConfig()

	assert.True(t, cfg.WithinOperatingHours("08:00"))
	assert.True(t, cfg.WithinOperatingHours("12:00"))
	assert.True(t, cfg.WithinOperatingHours("18:00"))
	assert.False(t, cfg.WithinOperatingHours("07:59"))
	assert.False(t, cfg.WithinOperatingHours("18:01"))
}
