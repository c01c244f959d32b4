package domain

// Значения по умолчанию для конфигурации студии
const (
	DefaultTotalWheels         = 8
	DefaultBookingFeePerPerson = 1000.00 // KES
	DefaultOperatingTime       = "08:00"
	DefaultClosingTime         = "18:00"
	DefaultBufferMinutes       = 15
	DefaultMaxDailySessions    = 20
	DefaultWheelSessionMinutes = 60
)

// Бизнес-константы бронирования
const (
	// SlotIntervalMinutes шаг генерации кандидатных слотов
	SlotIntervalMinutes = 30

	// DefaultUnlimitedCeilingHours потолок длительности для безлимитных пакетов,
	// у которых не задан собственный максимум
	DefaultUnlimitedCeilingHours = 8.0

	// DefaultPolicyNoticeHours окно отмены/переноса по умолчанию,
	// применяется если нет активного BookingRule
	DefaultPolicyNoticeHours = 24

	MinPeoplePerBooking = 1
	MaxPeoplePerBooking = 8

	MinPackageParticipants = 1
	MaxPackageParticipants = 10

	MaxNotesLength           = 500
	MaxCancellationReasonLen = 500
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// ReferenceDateFormat формат даты внутри номера бронирования IM-YYYYMMDD-NNNN
	ReferenceDateFormat = "20060102"
)

// CapacityStatuses статусы бронирований, занимающих ресурсы студии.
// Используется во всех проверках доступности: кругов, буферов и дневного лимита.
var CapacityStatuses = []PaymentStatus{
	StatusConfirmed,
	StatusPending,
}

// TerminalStatuses конечные статусы: из них нет переходов
var TerminalStatuses = []PaymentStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
