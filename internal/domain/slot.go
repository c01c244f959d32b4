package domain

import "github.com/imarastudio/IMS-BookingService/pkg/types"

// Slot доступный временной слот начала сессии
type Slot struct {
	StartTime       types.TimeString `json:"start_time"`
	EndTime         types.TimeString `json:"end_time"`
	DurationMinutes int              `json:"duration_minutes"`
	DurationDisplay string           `json:"duration_display"`
	Display         string           `json:"display"`
}

// NewSlot создает слот от start до end с человекочитаемыми подписями
func NewSlot(start, end types.TimeString) Slot {
	minutes := start.MinutesUntil(end)
	return Slot{
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: minutes,
		DurationDisplay: FormatDurationMinutes(minutes),
		Display:         start.Format12H() + " - " + end.Format12H(),
	}
}
