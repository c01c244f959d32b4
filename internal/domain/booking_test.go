package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

func TestFormatReference(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "IM-20260314-0001", FormatReference(date, 1))
	assert.Equal(t, "IM-20260314-0042", FormatReference(date, 42))
	assert.Equal(t, "IM-20260314-", ReferenceDayPrefix(date))
}

func TestComputeCharges(t *testing.T) {
	packageAmount, bookingFee, total := ComputeCharges(3500, 2, 1000)

	assert.Equal(t, 7000.0, packageAmount)
	assert.Equal(t, 2000.0, bookingFee)
	assert.Equal(t, 9000.0, total)

	packageAmount, bookingFee, total = ComputeCharges(5000, 1, 0)
	assert.Equal(t, 5000.0, packageAmount)
	assert.Equal(t, 0.0, bookingFee)
	assert.Equal(t, 5000.0, total)
}

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		status        PaymentStatus
		terminal      bool
		occupies      bool
		cancellable   bool
		reschedulable bool
	}{
		{StatusDraft, false, false, true, false},
		{StatusPending, false, true, true, true},
		{StatusConfirmed, false, true, true, true},
		{StatusCompleted, true, false, false, false},
		{StatusCancelled, true, false, false, false},
		{StatusNoShow, true, false, false, false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		assert.Equal(t, tt.terminal, b.IsTerminal(), "IsTerminal for %s", tt.status)
		assert.Equal(t, tt.occupies, b.OccupiesCapacity(), "OccupiesCapacity for %s", tt.status)
		assert.Equal(t, tt.cancellable, b.CanBeCancelled(), "CanBeCancelled for %s", tt.status)
		assert.Equal(t, tt.reschedulable, b.CanBeRescheduled(), "CanBeRescheduled for %s", tt.status)
	}
}

func TestBookingSessionStartAt(t *testing.T) {
	b := &Booking{
		BookedDate:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		SessionStart: types.TimeString("10:30"),
	}

	got := b.SessionStartAt()
	assert.Equal(t, time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC), got)
}

func TestBookingDurationDisplay(t *testing.T) {
	b := &Booking{
		SessionStart: types.TimeString("10:00"),
		SessionEnd:   types.TimeString("11:30"),
	}
	assert.Equal(t, "1 hour 30 minutes", b.DurationDisplay())

	open := &Booking{SessionStart: types.TimeString("10:00")}
	assert.Equal(t, "Flexible duration", open.DurationDisplay())
}
