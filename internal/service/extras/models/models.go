package models

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// CreatePostSessionRequest запрос на добавление послесессионной услуги.
// Ссылка на каталог зависит от типа: firing требует firing_charge_id,
// painting/glazing требуют painting_option_id, остальные extra_service_id.
type CreatePostSessionRequest struct {
	BookingID   int64  `json:"booking_id"`
	ServiceType string `json:"service_type"`

	FiringChargeID   *int64  `json:"firing_charge_id,omitempty"`
	PieceCount       int     `json:"piece_count,omitempty"`
	PieceDescription *string `json:"piece_description,omitempty"`

	PaintingOptionID *int64 `json:"painting_option_id,omitempty"`
	ItemCount        int    `json:"item_count,omitempty"`

	ExtraServiceID *int64  `json:"extra_service_id,omitempty"`
	Quantity       float64 `json:"quantity,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// PostSessionResponse послесессионная услуга в ответе API
type PostSessionResponse struct {
	ID          int64  `json:"id"`
	BookingID   int64  `json:"booking_id"`
	ServiceType string `json:"service_type"`

	FiringChargeID   *int64  `json:"firing_charge_id,omitempty"`
	PieceCount       int     `json:"piece_count,omitempty"`
	PieceDescription *string `json:"piece_description,omitempty"`

	PaintingOptionID *int64 `json:"painting_option_id,omitempty"`
	ItemCount        int    `json:"item_count,omitempty"`

	ExtraServiceID *int64  `json:"extra_service_id,omitempty"`
	Quantity       float64 `json:"quantity,omitempty"`

	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`

	IsPaid      bool    `json:"is_paid"`
	IsCompleted bool    `json:"is_completed"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// PostSessionListResponse список послесессионных услуг бронирования
type PostSessionListResponse struct {
	Services   []*PostSessionResponse `json:"services"`
	Total      int                    `json:"total"`
	TotalPrice float64                `json:"total_price"`
}

// FromDomainPostSession конвертирует domain.PostSessionService в ответ API
func FromDomainPostSession(svc *domain.PostSessionService) *PostSessionResponse {
	return &PostSessionResponse{
		ID:          svc.ID,
		BookingID:   svc.BookingID,
		ServiceType: string(svc.ServiceType),

		FiringChargeID:   svc.FiringChargeID,
		PieceCount:       svc.PieceCount,
		PieceDescription: svc.PieceDescription,

		PaintingOptionID: svc.PaintingOptionID,
		ItemCount:        svc.ItemCount,

		ExtraServiceID: svc.ExtraServiceID,
		Quantity:       svc.Quantity,

		UnitPrice:  svc.UnitPrice,
		TotalPrice: svc.TotalPrice,

		IsPaid:      svc.IsPaid,
		IsCompleted: svc.IsCompleted,
		Notes:       svc.Notes,
		CreatedAt:   svc.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainPostSessionList конвертирует список услуг с общей суммой
func FromDomainPostSessionList(services []*domain.PostSessionService) *PostSessionListResponse {
	result := make([]*PostSessionResponse, 0, len(services))
	var total float64
	for _, svc := range services {
		result = append(result, FromDomainPostSession(svc))
		total += svc.TotalPrice
	}
	return &PostSessionListResponse{
		Services:   result,
		Total:      len(result),
		TotalPrice: total,
	}
}
