package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени внутри дня (HH:MM)
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrOutOfDayRange возвращается, когда результат арифметики выходит за пределы суток
	ErrOutOfDayRange = errors.New("time is out of day range")
)

// TimeString время внутри дня в формате "HH:MM" (например, "10:30").
// Используется для времени начала/окончания сессий и рабочих часов студии.
// Хранится в БД как строка, сравнивается лексикографически-эквивалентно через парсинг.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет корректность формата времени
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// minutes возвращает количество минут с начала суток
func (t TimeString) minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// AddMinutes возвращает время, сдвинутое на delta минут (delta может быть отрицательной).
// Возвращает ошибку, если результат выходит за пределы суток.
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	m, err := t.minutes()
	if err != nil {
		return "", err
	}
	m += delta
	if m < 0 || m >= 24*60 {
		return "", fmt.Errorf("%w: %s%+d min", ErrOutOfDayRange, string(t), delta)
	}
	return fromMinutes(m), nil
}

// AddMinutesClamped возвращает время, сдвинутое на delta минут,
// с ограничением результата границами суток [00:00, 23:59].
// Используется при расширении окна на буферное время у границ рабочего дня.
func (t TimeString) AddMinutesClamped(delta int) TimeString {
	m, err := t.minutes()
	if err != nil {
		return t
	}
	m += delta
	if m < 0 {
		m = 0
	}
	if m > 24*60-1 {
		m = 24*60 - 1
	}
	return fromMinutes(m)
}

// MinutesUntil возвращает количество минут от t до other (может быть отрицательным)
func (t TimeString) MinutesUntil(other TimeString) int {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return 0
	}
	return b - a
}

// Format12H возвращает время в 12-часовом формате для отображения (например, "10:30 AM")
func (t TimeString) Format12H() string {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return string(t)
	}
	return parsed.Format("03:04 PM")
}

// fromMinutes создает TimeString из количества минут с начала суток
func fromMinutes(m int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}
