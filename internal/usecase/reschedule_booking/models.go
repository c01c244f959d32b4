package reschedule_booking

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID    int64
	NewDate      time.Time
	NewStartTime types.TimeString

	// WheelNumbers явные номера кругов для нового окна; пустой список - автоназначение
	WheelNumbers []int
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	ID        int64
	Reference string

	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationDisplay string

	PackageName    string
	NumPeople      int
	TotalAmount    float64
	Status         string
	AssignedWheels []int
}
