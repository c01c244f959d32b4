package models

import (
	"errors"
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetCustomerBookingsRequest запрос истории бронирований клиента
type GetCustomerBookingsRequest struct {
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
}

// GetDailyBookingsRequest запрос бронирований на дату
type GetDailyBookingsRequest struct {
	Date   string  `json:"date"`
	Status *string `json:"status,omitempty"`
}

// UpdateStatusRequest запрос на изменение статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID               int64    `json:"id"`
	BookingReference string   `json:"booking_reference"`
	CustomerName     string   `json:"customer_name"`
	CustomerPhone    string   `json:"customer_phone"`
	CustomerEmail    string   `json:"customer_email"`
	PackageID        int64    `json:"package_id"`
	PackageName      string   `json:"package_name"`
	NumberOfPeople   int      `json:"num_people"`
	Date             string   `json:"date"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	DurationDisplay  string   `json:"duration_display"`
	PackageAmount    float64  `json:"package_amount"`
	BookingFee       float64  `json:"booking_fee"`
	TotalAmount      float64  `json:"total_amount"`
	Status           string   `json:"status"`
	BookingChannel   string   `json:"booking_channel"`
	AssignedWheels   []int    `json:"assigned_wheels"`
	CheckinTime      *string  `json:"checkin_time,omitempty"`
	CheckoutTime     *string  `json:"checkout_time,omitempty"`
	ActualStartTime  *string  `json:"actual_start_time,omitempty"`
	ActualEndTime    *string  `json:"actual_end_time,omitempty"`
	SpecialRequests  *string  `json:"special_requests,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	CreatedAt        string   `json:"created_at"`
	ConfirmedAt      *string  `json:"confirmed_at,omitempty"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// ScheduleBookingView краткая карточка бронирования в расписании дня
type ScheduleBookingView struct {
	ID               int64  `json:"id"`
	BookingReference string `json:"booking_reference"`
	CustomerName     string `json:"customer_name"`
	PackageName      string `json:"package_name"`
	NumberOfPeople   int    `json:"num_people"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	Status           string `json:"status"`
	AssignedWheels   []int  `json:"assigned_wheels"`
}

// ScheduleSlotView занятость получасового интервала
type ScheduleSlotView struct {
	StartTime   string                 `json:"start_time"`
	EndTime     string                 `json:"end_time"`
	Bookings    []*ScheduleBookingView `json:"bookings"`
	WheelsInUse int                    `json:"wheels_in_use"`
	WheelsFree  int                    `json:"wheels_free"`
}

// DailyScheduleResponse расписание студии на дату
type DailyScheduleResponse struct {
	Date          string              `json:"date"`
	OperatingTime string              `json:"operating_time"`
	ClosingTime   string              `json:"closing_time"`
	TotalWheels   int                 `json:"total_wheels"`
	TotalBookings int                 `json:"total_bookings"`
	Slots         []*ScheduleSlotView `json:"slots"`
}

// Конвертеры domain -> response

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking, wheels []int) *BookingResponse {
	if wheels == nil {
		wheels = []int{}
	}
	resp := &BookingResponse{
		ID:               b.ID,
		BookingReference: b.Reference,
		CustomerName:     b.CustomerName,
		CustomerPhone:    b.CustomerPhone,
		CustomerEmail:    b.CustomerEmail,
		PackageID:        b.PackageID,
		PackageName:      b.PackageName,
		NumberOfPeople:   b.NumberOfPeople,
		Date:             b.BookedDate.Format(domain.DateFormat),
		StartTime:        b.SessionStart.String(),
		EndTime:          b.SessionEnd.String(),
		DurationDisplay:  b.DurationDisplay(),
		PackageAmount:    b.PackageAmount,
		BookingFee:       b.BookingFee,
		TotalAmount:      b.TotalAmount,
		Status:           string(b.Status),
		BookingChannel:   b.BookingChannel,
		AssignedWheels:   wheels,
		SpecialRequests:  b.SpecialRequests,
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
	resp.CheckinTime = formatTimePtr(b.CheckinTime)
	resp.CheckoutTime = formatTimePtr(b.CheckoutTime)
	resp.ActualStartTime = formatTimePtr(b.ActualStartTime)
	resp.ActualEndTime = formatTimePtr(b.ActualEndTime)
	resp.ConfirmedAt = formatTimePtr(b.ConfirmedAt)
	return resp
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b, nil))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus конвертирует строку в domain.PaymentStatus
func ToDomainBookingStatus(status string) (domain.PaymentStatus, error) {
	switch domain.PaymentStatus(status) {
	case domain.StatusDraft, domain.StatusPending, domain.StatusConfirmed,
		domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow:
		return domain.PaymentStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
