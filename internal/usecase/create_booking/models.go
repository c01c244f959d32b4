package create_booking

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	PackageID int64
	NumPeople int

	Date      time.Time
	StartTime types.TimeString

	// WheelNumbers явные номера кругов; пустой список - автоназначение
	WheelNumbers []int

	BookingChannel  string
	SpecialRequests *string
	Notes           *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	Reference string

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	PackageID   int64
	PackageName string
	NumPeople   int

	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationDisplay string

	PackageAmount float64
	BookingFee    float64
	TotalAmount   float64
	Status        string

	AssignedWheels []int

	BookingChannel  string
	SpecialRequests *string
	Notes           *string
	CreatedAt       time.Time
}
