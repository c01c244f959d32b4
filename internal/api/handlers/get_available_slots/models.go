package get_available_slots

import (
	"github.com/imarastudio/IMS-BookingService/internal/domain"
	getAvailableSlots "github.com/imarastudio/IMS-BookingService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date        string        `json:"date"`
	PackageID   int64         `json:"package_id"`
	PackageName string        `json:"package_name"`
	NumPeople   int           `json:"num_people"`
	Slots       []domain.Slot `json:"slots"`
	Total       int           `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := resp.Slots
	if slots == nil {
		slots = []domain.Slot{}
	}
	return &SlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		PackageID:   resp.PackageID,
		PackageName: resp.PackageName,
		NumPeople:   resp.NumPeople,
		Slots:       slots,
		Total:       len(slots),
	}
}
