package check_availability

import (
	"fmt"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PackageID <= 0 {
		return fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if req.NumPeople < domain.MinPeoplePerBooking || req.NumPeople > domain.MaxPeoplePerBooking {
		return fmt.Errorf("%w: number of people must be between %d and %d",
			ErrInvalidInput, domain.MinPeoplePerBooking, domain.MaxPeoplePerBooking)
	}

	return nil
}
