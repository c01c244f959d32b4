package domain

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// WheelClaim привязка круга к бронированию на конкретное временное окно.
// Пара (booking, wheel) уникальна; при переназначении кругов весь набор заявок
// бронирования удаляется и создаётся заново.
type WheelClaim struct {
	ID        int64
	BookingID int64
	WheelID   int64

	// WheelNumber денормализованный номер круга (для сортировки и ответов API)
	WheelNumber int

	// Окно заявки может быть уже окна бронирования: у комбо-пакетов
	// гончарная часть короче полной сессии
	StartTime types.TimeString
	EndTime   types.TimeString

	// BookingStatus статус родительского бронирования на момент выборки
	// (заполняется join-ом при чтении заявок дня)
	BookingStatus PaymentStatus

	CreatedAt time.Time
}

// Overlaps проверяет пересечение окна заявки с [start, end).
// Тройная проверка: начало слота внутри окна заявки, начало заявки внутри
// слота, либо точное вложение одного окна в другое.
func (c *WheelClaim) Overlaps(start, end types.TimeString) bool {
	if c.StartTime.IsBefore(end) && c.EndTime.IsAfter(start) {
		return true
	}
	if !c.StartTime.IsAfter(start) && !c.EndTime.IsBefore(end) {
		return true
	}
	if !start.IsAfter(c.StartTime) && !end.IsBefore(c.EndTime) {
		return true
	}
	return false
}

// ResolveClaimWindow вычисляет окно заявки на круг для бронирования.
// Для чисто гончарных пакетов заявка наследует всё окно сессии; для
// комбо-пакетов с фиксированной гончарной частью конец считается независимо
// от конца сессии; иначе берётся стандартная длительность круга из конфигурации.
func ResolveClaimWindow(b *Booking, p *Package, cfg *StudioConfig) (start, end types.TimeString) {
	start = b.SessionStart

	switch {
	case p.IsWheelOnly():
		end = b.SessionEnd
	case p.Duration.IsFixed():
		end = start.AddMinutesClamped(int(p.Duration.FixedHours * 60))
	default:
		end = start.AddMinutesClamped(cfg.WheelSessionDuration)
	}

	if end.IsAfter(cfg.ClosingTime) {
		end = cfg.ClosingTime
	}
	return start, end
}
