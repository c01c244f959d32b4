package domain

import "time"

// WheelStatus статус гончарного круга
type WheelStatus string

const (
	WheelAvailable   WheelStatus = "available"
	WheelReserved    WheelStatus = "reserved"
	WheelMaintenance WheelStatus = "maintenance"
)

// Valid возвращает true для известного статуса круга
func (s WheelStatus) Valid() bool {
	switch s {
	case WheelAvailable, WheelReserved, WheelMaintenance:
		return true
	}
	return false
}

// Wheel гончарный круг - дефицитный бронируемый ресурс студии
type Wheel struct {
	ID          int64
	WheelNumber int // уникальный, неизменяемый идентификатор
	Name        *string
	Status      WheelStatus
	IsActive    bool
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable возвращает true, если круг можно учитывать при подсчёте доступности
func (w *Wheel) IsBookable() bool {
	return w.IsActive && w.Status == WheelAvailable
}
