package domain

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// StudioConfigID единственная строка конфигурации студии
const StudioConfigID = 1

// StudioConfig конфигурация студии: singleton-строка в БД, создаётся с
// дефолтами при старте сервиса и явно передаётся в каждый вызов движка
// доступности (никаких process-wide глобалов).
type StudioConfig struct {
	ID                  int64
	TotalWheels         int
	BookingFeePerPerson float64

	OperatingTime types.TimeString
	ClosingTime   types.TimeString

	// BufferMinutes обязательная пауза между соседними сессиями
	BufferMinutes    int
	MaxDailySessions int

	// WheelSessionDuration стандартная длительность гончарной сессии в минутах
	// (используется для окна заявки, когда пакет её не определяет)
	WheelSessionDuration int

	IsMaintenanceMode  bool
	MaintenanceMessage *string

	UpdatedAt time.Time
}

// DefaultStudioConfig конфигурация студии по умолчанию
func DefaultStudioConfig() *StudioConfig {
	return &StudioConfig{
		ID:                   StudioConfigID,
		TotalWheels:          DefaultTotalWheels,
		BookingFeePerPerson:  DefaultBookingFeePerPerson,
		OperatingTime:        types.TimeString(DefaultOperatingTime),
		ClosingTime:          types.TimeString(DefaultClosingTime),
		BufferMinutes:        DefaultBufferMinutes,
		MaxDailySessions:     DefaultMaxDailySessions,
		WheelSessionDuration: DefaultWheelSessionMinutes,
	}
}

// IsOpen возвращает false в режиме обслуживания
func (c *StudioConfig) IsOpen() bool {
	return !c.IsMaintenanceMode
}

// WithinOperatingHours проверяет, что время попадает в рабочие часы студии
// (включая границы)
func (c *StudioConfig) WithinOperatingHours(t types.TimeString) bool {
	return !t.IsBefore(c.OperatingTime) && !t.IsAfter(c.ClosingTime)
}

// OperatingHoursDisplay рабочие часы для сообщений пользователю
func (c *StudioConfig) OperatingHoursDisplay() string {
	return c.OperatingTime.Format12H() + " to " + c.ClosingTime.Format12H()
}
