package check_availability

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	checkAvailability "github.com/imarastudio/IMS-BookingService/internal/usecase/check_availability"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// CheckRequest HTTP request model
type CheckRequest struct {
	PackageID int64  `json:"package_id"`
	Date      string `json:"date"`       // "2026-03-14"
	StartTime string `json:"start_time"` // "14:00"
	NumPeople int    `json:"num_people"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		PackageID: r.PackageID,
		Date:      date,
		StartTime: startTime,
		NumPeople: r.NumPeople,
	}, nil
}
