package create_booking

import (
	"fmt"
	"strings"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerEmail) == "" || !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: valid customer email is required", ErrInvalidInput)
	}

	if req.PackageID <= 0 {
		return fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	if req.NumPeople < domain.MinPeoplePerBooking || req.NumPeople > domain.MaxPeoplePerBooking {
		return fmt.Errorf("%w: number of people must be between %d and %d",
			ErrInvalidInput, domain.MinPeoplePerBooking, domain.MaxPeoplePerBooking)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if err := validateChannel(req.BookingChannel); err != nil {
		return err
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateChannel проверяет канал бронирования
func validateChannel(channel string) error {
	switch channel {
	case domain.ChannelWebsite, domain.ChannelWhatsApp, domain.ChannelPhone:
		return nil
	case "":
		return nil // канал по умолчанию подставляется в usecase
	default:
		return fmt.Errorf("%w: unknown booking channel %q", ErrInvalidInput, channel)
	}
}
