package models

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// CreateWheelRequest запрос на создание круга
type CreateWheelRequest struct {
	WheelNumber int     `json:"wheel_number"`
	Name        *string `json:"name,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateWheelRequest запрос на изменение круга. Номер круга неизменяем.
type UpdateWheelRequest struct {
	Name     *string `json:"name,omitempty"`
	Status   *string `json:"status,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// WheelResponse круг в ответе API
type WheelResponse struct {
	ID          int64   `json:"id"`
	WheelNumber int     `json:"wheel_number"`
	Name        *string `json:"name,omitempty"`
	Status      string  `json:"status"`
	IsActive    bool    `json:"is_active"`
	IsBookable  bool    `json:"is_bookable"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// WheelListResponse список кругов
type WheelListResponse struct {
	Wheels []*WheelResponse `json:"wheels"`
	Total  int              `json:"total"`
}

// FromDomainWheel конвертирует domain.Wheel в WheelResponse
func FromDomainWheel(w *domain.Wheel) *WheelResponse {
	return &WheelResponse{
		ID:          w.ID,
		WheelNumber: w.WheelNumber,
		Name:        w.Name,
		Status:      string(w.Status),
		IsActive:    w.IsActive,
		IsBookable:  w.IsBookable(),
		Notes:       w.Notes,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainWheelList конвертирует список кругов
func FromDomainWheelList(wheels []*domain.Wheel) *WheelListResponse {
	result := make([]*WheelResponse, 0, len(wheels))
	for _, w := range wheels {
		result = append(result, FromDomainWheel(w))
	}
	return &WheelListResponse{
		Wheels: result,
		Total:  len(result),
	}
}
