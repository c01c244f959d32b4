package domain

import (
	"fmt"
	"time"

	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// PaymentStatus статус бронирования (он же статус оплаты)
type PaymentStatus string

const (
	StatusDraft     PaymentStatus = "draft"
	StatusPending   PaymentStatus = "pending"
	StatusConfirmed PaymentStatus = "confirmed"
	StatusCompleted PaymentStatus = "completed"
	StatusCancelled PaymentStatus = "cancelled"
	StatusNoShow    PaymentStatus = "no_show"
)

// Booking бронирование сессии в студии
type Booking struct {
	ID        int64
	Reference string // IM-YYYYMMDD-NNNN, неизменяемый после создания

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	PackageID      int64
	NumberOfPeople int

	BookedDate   time.Time
	SessionStart types.TimeString
	SessionEnd   types.TimeString

	// Денормализованные данные пакета: позволяют фильтровать бронирования дня
	// (буферная проверка, подсчёт кругов) без join на packages и сохраняют
	// историю при изменении пакета
	PackageName      string
	RequiresWheel    bool
	HasFixedDuration bool

	PackageAmount float64
	BookingFee    float64
	TotalAmount   float64
	Status        PaymentStatus

	ActualStartTime *time.Time
	ActualEndTime   *time.Time
	CheckinTime     *time.Time
	CheckoutTime    *time.Time

	BookingChannel  string
	SpecialRequests *string
	Notes           *string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
}

// Каналы бронирования
const (
	ChannelWebsite  = "website"
	ChannelWhatsApp = "whatsapp"
	ChannelPhone    = "phone"
)

// IsTerminal возвращает true для конечных статусов
func (b *Booking) IsTerminal() bool {
	for _, s := range TerminalStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// OccupiesCapacity возвращает true, если бронирование занимает ресурсы студии
func (b *Booking) OccupiesCapacity() bool {
	return b.Status == StatusConfirmed || b.Status == StatusPending
}

// CanBeCancelled возвращает true, если бронирование ещё можно отменить
func (b *Booking) CanBeCancelled() bool {
	return !b.IsTerminal()
}

// CanBeRescheduled возвращает true, если бронирование можно перенести
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusConfirmed || b.Status == StatusPending
}

// SessionStartAt возвращает дату+время начала сессии как time.Time
func (b *Booking) SessionStartAt() time.Time {
	start, err := time.Parse(TimeFormat, b.SessionStart.String())
	if err != nil {
		return b.BookedDate
	}
	return time.Date(
		b.BookedDate.Year(), b.BookedDate.Month(), b.BookedDate.Day(),
		start.Hour(), start.Minute(), 0, 0, b.BookedDate.Location(),
	)
}

// DurationDisplay человекочитаемая длительность сессии
func (b *Booking) DurationDisplay() string {
	if b.SessionStart.IsZero() || b.SessionEnd.IsZero() {
		return "Flexible duration"
	}
	return FormatDurationMinutes(b.SessionStart.MinutesUntil(b.SessionEnd))
}

// FormatReference формирует номер бронирования IM-YYYYMMDD-NNNN
func FormatReference(date time.Time, seq int) string {
	return fmt.Sprintf("IM-%s-%04d", date.Format(ReferenceDateFormat), seq)
}

// ReferenceDayPrefix возвращает префикс номеров бронирований на указанную дату
func ReferenceDayPrefix(date time.Time) string {
	return fmt.Sprintf("IM-%s-", date.Format(ReferenceDateFormat))
}

// ComputeCharges вычисляет денежные поля бронирования.
// Чистая функция от цены пакета, числа людей и сбора за бронирование -
// вызывается явно при создании/изменении, без неявных хуков при сохранении.
func ComputeCharges(packagePrice float64, people int, feePerPerson float64) (packageAmount, bookingFee, total float64) {
	packageAmount = packagePrice * float64(people)
	bookingFee = feePerPerson * float64(people)
	total = packageAmount + bookingFee
	return packageAmount, bookingFee, total
}

// DailyBookingsFilter фильтр для выборки бронирований на дату
type DailyBookingsFilter struct {
	Date time.Time

	// Statuses фильтр по статусам; пустой слайс - все статусы
	Statuses []PaymentStatus

	// RequiresWheelOnly только бронирования пакетов с кругами
	RequiresWheelOnly bool

	// FixedDurationOnly только бронирования пакетов с фиксированной длительностью
	// (используется буферной проверкой)
	FixedDurationOnly bool
}
