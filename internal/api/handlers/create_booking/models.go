package create_booking

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	createBooking "github.com/imarastudio/IMS-BookingService/internal/usecase/create_booking"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	PackageID int64 `json:"package_id"`
	NumPeople int   `json:"num_people"`

	Date      string `json:"date"`       // "2026-03-14"
	StartTime string `json:"start_time"` // "14:00"

	WheelNumbers []int `json:"wheel_numbers,omitempty"`

	BookingChannel  string  `json:"booking_channel,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64  `json:"id"`
	BookingReference string `json:"booking_reference"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	PackageID   int64  `json:"package_id"`
	PackageName string `json:"package_name"`
	NumPeople   int    `json:"num_people"`

	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationDisplay string `json:"duration_display"`

	PackageAmount float64 `json:"package_amount"`
	BookingFee    float64 `json:"booking_fee"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`

	AssignedWheels []int `json:"assigned_wheels"`

	BookingChannel  string  `json:"booking_channel"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		PackageID:       r.PackageID,
		NumPeople:       r.NumPeople,
		Date:            date,
		StartTime:       startTime,
		WheelNumbers:    r.WheelNumbers,
		BookingChannel:  r.BookingChannel,
		SpecialRequests: r.SpecialRequests,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	wheels := resp.AssignedWheels
	if wheels == nil {
		wheels = []int{}
	}
	return &BookingResponse{
		ID:               resp.ID,
		BookingReference: resp.Reference,
		CustomerName:     resp.CustomerName,
		CustomerPhone:    resp.CustomerPhone,
		CustomerEmail:    resp.CustomerEmail,
		PackageID:        resp.PackageID,
		PackageName:      resp.PackageName,
		NumPeople:        resp.NumPeople,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		DurationDisplay:  resp.DurationDisplay,
		PackageAmount:    resp.PackageAmount,
		BookingFee:       resp.BookingFee,
		TotalAmount:      resp.TotalAmount,
		Status:           resp.Status,
		AssignedWheels:   wheels,
		BookingChannel:   resp.BookingChannel,
		SpecialRequests:  resp.SpecialRequests,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
