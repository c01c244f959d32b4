package reschedule_booking

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	rescheduleBooking "github.com/imarastudio/IMS-BookingService/internal/usecase/reschedule_booking"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewDate      string `json:"new_date"`       // "2026-03-20"
	NewStartTime string `json:"new_start_time"` // "11:00"
	WheelNumbers []int  `json:"wheel_numbers,omitempty"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	ID               int64  `json:"id"`
	BookingReference string `json:"booking_reference"`

	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationDisplay string `json:"duration_display"`

	PackageName    string  `json:"package_name"`
	NumPeople      int     `json:"num_people"`
	TotalAmount    float64 `json:"total_amount"`
	Status         string  `json:"status"`
	AssignedWheels []int   `json:"assigned_wheels"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID int64) (*rescheduleBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID:    bookingID,
		NewDate:      date,
		NewStartTime: startTime,
		WheelNumbers: r.WheelNumbers,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	wheels := resp.AssignedWheels
	if wheels == nil {
		wheels = []int{}
	}
	return &RescheduleBookingResponse{
		ID:               resp.ID,
		BookingReference: resp.Reference,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		DurationDisplay:  resp.DurationDisplay,
		PackageName:      resp.PackageName,
		NumPeople:        resp.NumPeople,
		TotalAmount:      resp.TotalAmount,
		Status:           resp.Status,
		AssignedWheels:   wheels,
	}
}
