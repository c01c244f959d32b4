package domain

import "time"

// BookingRule именованный набор политик бронирования (справочные данные).
// Жизненный цикл бронирований читает окна отмены/переноса отсюда;
// при отсутствии активного правила действует DefaultPolicyNoticeHours.
type BookingRule struct {
	ID          int64
	Name        string
	Description string

	BookingFeePercent   float64
	CancellationHours   int
	RescheduleHours     int
	MaxGroupSize        int
	BookingValidityDays int
	IsActive            bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultBookingRule правила по умолчанию, когда в БД нет активной строки
func DefaultBookingRule() *BookingRule {
	return &BookingRule{
		Name:                "default",
		BookingFeePercent:   50.0,
		CancellationHours:   DefaultPolicyNoticeHours,
		RescheduleHours:     DefaultPolicyNoticeHours,
		MaxGroupSize:        MaxPeoplePerBooking,
		BookingValidityDays: 28,
		IsActive:            true,
	}
}
