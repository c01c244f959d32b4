package check_availability

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// Request модель запроса проверки доступности слота
type Request struct {
	PackageID int64
	Date      time.Time
	StartTime types.TimeString
	NumPeople int
}

// Response модель ответа проверки доступности
type Response struct {
	IsAvailable     bool             `json:"is_available"`
	Reason          *string          `json:"reason,omitempty"`
	Date            time.Time        `json:"date"`
	StartTime       types.TimeString `json:"start_time"`
	EndTime         types.TimeString `json:"end_time,omitempty"`
	PackageName     string           `json:"package_name"`
	NumPeople       int              `json:"num_people"`
	DurationDisplay string           `json:"duration_display,omitempty"`
	WheelAvailable  bool             `json:"wheel_available"`
}
