package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, "10:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("10:30:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 14, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestTimeStringValidate(t *testing.T) {
	assert.NoError(t, TimeString("08:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())
	assert.ErrorIs(t, TimeString("8am").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
}

func TestTimeStringComparisons(t *testing.T) {
	a := TimeString("10:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	got, err = TimeString("10:00").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrOutOfDayRange)

	_, err = TimeString("00:10").AddMinutes(-30)
	assert.ErrorIs(t, err, ErrOutOfDayRange)
}

func TestTimeStringAddMinutesClamped(t *testing.T) {
	assert.Equal(t, TimeString("11:30"), TimeString("10:00").AddMinutesClamped(90))
	assert.Equal(t, TimeString("23:59"), TimeString("23:30").AddMinutesClamped(60))
	assert.Equal(t, TimeString("00:00"), TimeString("00:10").AddMinutesClamped(-30))
}

func TestTimeStringMinutesUntil(t *testing.T) {
	assert.Equal(t, 90, TimeString("10:00").MinutesUntil(TimeString("11:30")))
	assert.Equal(t, -30, TimeString("10:00").MinutesUntil(TimeString("09:30")))
	assert.Equal(t, 0, TimeString("10:00").MinutesUntil(TimeString("10:00")))
}

func TestTimeStringFormat12H(t *testing.T) {
	assert.Equal(t, "10:30 AM", TimeString("10:30").Format12H())
	assert.Equal(t, "02:00 PM", TimeString("14:00").Format12H())
	assert.Equal(t, "bad", TimeString("bad").Format12H())
}
