package models

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// UpdateConfigRequest запрос на изменение конфигурации студии.
// Все поля опциональны: незаданные поля сохраняют текущие значения.
type UpdateConfigRequest struct {
	TotalWheels          *int     `json:"total_wheels,omitempty"`
	BookingFeePerPerson  *float64 `json:"booking_fee_per_person,omitempty"`
	OperatingTime        *string  `json:"operating_time,omitempty"`
	ClosingTime          *string  `json:"closing_time,omitempty"`
	BufferMinutes        *int     `json:"buffer_minutes,omitempty"`
	MaxDailySessions     *int     `json:"max_daily_sessions,omitempty"`
	WheelSessionDuration *int     `json:"wheel_session_duration,omitempty"`
	IsMaintenanceMode    *bool    `json:"is_maintenance_mode,omitempty"`
	MaintenanceMessage   *string  `json:"maintenance_message,omitempty"`
}

// ConfigResponse конфигурация студии в ответе API
type ConfigResponse struct {
	TotalWheels          int      `json:"total_wheels"`
	BookingFeePerPerson  float64  `json:"booking_fee_per_person"`
	OperatingTime        string   `json:"operating_time"`
	ClosingTime          string   `json:"closing_time"`
	BufferMinutes        int      `json:"buffer_minutes"`
	MaxDailySessions     int      `json:"max_daily_sessions"`
	WheelSessionDuration int      `json:"wheel_session_duration"`
	IsMaintenanceMode    bool     `json:"is_maintenance_mode"`
	MaintenanceMessage   *string  `json:"maintenance_message,omitempty"`
	UpdatedAt            string   `json:"updated_at"`
}

// FromDomainConfig конвертирует domain.StudioConfig в ConfigResponse
func FromDomainConfig(cfg *domain.StudioConfig) *ConfigResponse {
	return &ConfigResponse{
		TotalWheels:          cfg.TotalWheels,
		BookingFeePerPerson:  cfg.BookingFeePerPerson,
		OperatingTime:        cfg.OperatingTime.String(),
		ClosingTime:          cfg.ClosingTime.String(),
		BufferMinutes:        cfg.BufferMinutes,
		MaxDailySessions:     cfg.MaxDailySessions,
		WheelSessionDuration: cfg.WheelSessionDuration,
		IsMaintenanceMode:    cfg.IsMaintenanceMode,
		MaintenanceMessage:   cfg.MaintenanceMessage,
		UpdatedAt:            cfg.UpdatedAt.Format(time.RFC3339),
	}
}

// ApplyTo накладывает заданные поля запроса на текущую конфигурацию
func (r *UpdateConfigRequest) ApplyTo(cfg *domain.StudioConfig) {
	if r.TotalWheels != nil {
		cfg.TotalWheels = *r.TotalWheels
	}
	if r.BookingFeePerPerson != nil {
		cfg.BookingFeePerPerson = *r.BookingFeePerPerson
	}
	if r.OperatingTime != nil {
		cfg.OperatingTime = types.TimeString(*r.OperatingTime)
	}
	if r.ClosingTime != nil {
		cfg.ClosingTime = types.TimeString(*r.ClosingTime)
	}
	if r.BufferMinutes != nil {
		cfg.BufferMinutes = *r.BufferMinutes
	}
	if r.MaxDailySessions != nil {
		cfg.MaxDailySessions = *r.MaxDailySessions
	}
	if r.WheelSessionDuration != nil {
		cfg.WheelSessionDuration = *r.WheelSessionDuration
	}
	if r.IsMaintenanceMode != nil {
		cfg.IsMaintenanceMode = *r.IsMaintenanceMode
	}
	if r.MaintenanceMessage != nil {
		cfg.MaintenanceMessage = r.MaintenanceMessage
	}
}
