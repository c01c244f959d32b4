package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// PackageType тип пакета услуг студии
type PackageType string

const (
	PackageWheelThrowing PackageType = "wheel_throwing"
	PackageHandBuilding  PackageType = "hand_building"
	PackageCombo         PackageType = "combo"
	PackagePainting      PackageType = "painting"
	PackageHobbyist      PackageType = "hobbyist"
	PackageColoredClay   PackageType = "colored_clay"
)

// Valid возвращает true для известного типа пакета
func (t PackageType) Valid() bool {
	switch t {
	case PackageWheelThrowing, PackageHandBuilding, PackageCombo,
		PackagePainting, PackageHobbyist, PackageColoredClay:
		return true
	}
	return false
}

// CodePrefix возвращает префикс для автогенерации кода пакета (первые 3 буквы типа)
func (t PackageType) CodePrefix() string {
	s := string(t)
	if len(s) < 3 {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(s[:3])
}

// DurationMode режим длительности пакета
type DurationMode string

const (
	// DurationFixed точная, фиксированная длительность
	DurationFixed DurationMode = "fixed"

	// DurationUnlimited открытая длительность до потолка или закрытия студии
	DurationUnlimited DurationMode = "unlimited"
)

var (
	// ErrFixedHoursRequired фиксированный пакет обязан задавать точную длительность
	ErrFixedHoursRequired = errors.New("fixed-duration package must set fixed hours")

	// ErrFixedWithMaxHours фиксированный пакет не может иметь максимум длительности
	ErrFixedWithMaxHours = errors.New("fixed-duration package must not set max hours")

	// ErrMaxHoursRequired безлимитный пакет обязан задавать потолок длительности
	ErrMaxHoursRequired = errors.New("unlimited package must set max hours ceiling")

	// ErrInvalidDurationMode неизвестный режим длительности
	ErrInvalidDurationMode = errors.New("invalid duration mode")
)

// Duration политика длительности пакета: tagged variant вместо разбросанных
// по вызывающему коду булевых флагов. Ровно одна из ветвей активна.
type Duration struct {
	Mode DurationMode

	// FixedHours точная длительность (только для Mode == DurationFixed)
	FixedHours float64

	// MaxHours потолок длительности (только для Mode == DurationUnlimited;
	// nil - до закрытия студии)
	MaxHours *float64
}

// NewFixedDuration создает фиксированную политику длительности
func NewFixedDuration(hours float64) Duration {
	return Duration{Mode: DurationFixed, FixedHours: hours}
}

// NewUnlimitedDuration создает открытую политику длительности с потолком
func NewUnlimitedDuration(maxHours *float64) Duration {
	return Duration{Mode: DurationUnlimited, MaxHours: maxHours}
}

// Validate проверяет согласованность политики длительности:
// фиксированный пакет - только точные часы, безлимитный - только потолок
func (d Duration) Validate() error {
	switch d.Mode {
	case DurationFixed:
		if d.FixedHours <= 0 {
			return ErrFixedHoursRequired
		}
		if d.MaxHours != nil {
			return ErrFixedWithMaxHours
		}
	case DurationUnlimited:
		if d.MaxHours == nil || *d.MaxHours <= 0 {
			return ErrMaxHoursRequired
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDurationMode, d.Mode)
	}
	return nil
}

// IsFixed возвращает true для фиксированной длительности
func (d Duration) IsFixed() bool {
	return d.Mode == DurationFixed
}

// ResolveEndTime вычисляет время окончания сессии от времени начала:
// fixed - start + часы; unlimited с потолком - min(start + max, closing);
// unlimited без потолка - время закрытия студии.
// Результат никогда не выходит за closing.
func (d Duration) ResolveEndTime(start types.TimeString, closing types.TimeString) types.TimeString {
	var minutes int
	switch {
	case d.Mode == DurationFixed && d.FixedHours > 0:
		minutes = int(d.FixedHours * 60)
	case d.MaxHours != nil:
		minutes = int(*d.MaxHours * 60)
	default:
		return closing
	}

	end := start.AddMinutesClamped(minutes)
	if end.IsAfter(closing) {
		return closing
	}
	return end
}

// Display человекочитаемое описание длительности
func (d Duration) Display() string {
	switch {
	case d.Mode == DurationFixed && d.FixedHours > 0:
		return FormatDurationMinutes(int(d.FixedHours * 60))
	case d.MaxHours != nil:
		return fmt.Sprintf("Up to %g hours", *d.MaxHours)
	default:
		return "Unlimited duration until studio closing time"
	}
}

// Package пакет услуг студии (справочные данные, читаются часто)
type Package struct {
	ID          int64
	Code        string // уникальный, автогенерируется как PRE-NNN если не задан
	Name        string
	PackageType PackageType
	Description *string
	Price       float64

	Duration Duration

	RequiresWheel   bool
	ClayWeightKg    float64
	MaxParticipants int

	DisplayFeatures   *string
	DisplaySuggestion *string
	IsActive          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет согласованность пакета
func (p *Package) Validate() error {
	if !p.PackageType.Valid() {
		return fmt.Errorf("invalid package type: %q", p.PackageType)
	}
	if p.MaxParticipants < MinPackageParticipants || p.MaxParticipants > MaxPackageParticipants {
		return fmt.Errorf("max participants must be between %d and %d",
			MinPackageParticipants, MaxPackageParticipants)
	}
	return p.Duration.Validate()
}

// CanAccommodate возвращает true, если пакет рассчитан на указанное число людей
func (p *Package) CanAccommodate(people int) bool {
	return people >= MinPeoplePerBooking && people <= p.MaxParticipants
}

// IsWheelOnly возвращает true для чисто гончарного пакета: заявка на круг
// занимает всё окно сессии
func (p *Package) IsWheelOnly() bool {
	return p.PackageType == PackageWheelThrowing
}

// IsCombo возвращает true для комбинированного пакета: гончарная часть
// короче полной сессии
func (p *Package) IsCombo() bool {
	return p.PackageType == PackageCombo
}

// FormatPackageCode формирует код пакета вида WHE-003
func FormatPackageCode(t PackageType, seq int) string {
	return fmt.Sprintf("%s-%03d", t.CodePrefix(), seq)
}

// FormatDurationMinutes форматирует длительность в минутах в строку вида
// "1 hour 30 minutes"
func FormatDurationMinutes(minutes int) string {
	if minutes <= 0 {
		return "0 minutes"
	}

	hours := minutes / 60
	mins := minutes % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", hours, plural("hour", hours)))
	}
	if mins > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", mins, plural("minute", mins)))
	}
	return strings.Join(parts, " ")
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
