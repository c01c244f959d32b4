package get_available_slots

import (
	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// daySnapshot данные дня, загруженные один раз перед обходом кандидатов:
// обход слотов не ходит в БД на каждый шаг
type daySnapshot struct {
	cfg           *domain.StudioConfig
	wheels        []*domain.Wheel
	claims        []*domain.WheelClaim
	fixedBookings []*domain.Booking
}

// generateSlots обходит кандидатные времена начала от открытия до закрытия
// с шагом 30 минут и возвращает прошедшие все проверки слоты.
//
// Для пакетов фиксированной длительности конец слота обязан уложиться до
// закрытия. Для безлимитных пакетов конец - min(начало + потолок, закрытие),
// а круги проверяются только на первый час окна: остаток открыт и заранее
// не верифицируется.
func generateSlots(snap *daySnapshot, pkg *domain.Package, numPeople int) []domain.Slot {
	slots := make([]domain.Slot, 0)
	closing := snap.cfg.ClosingTime

	current := snap.cfg.OperatingTime
	for current.IsBefore(closing) {
		end, ok := resolveCandidateEnd(pkg, current, closing)
		if !ok {
			// Фиксированная длительность больше не помещается до закрытия,
			// более поздние кандидаты не поместятся тем более
			break
		}

		if candidateFits(snap, pkg, numPeople, current, end) {
			slots = append(slots, domain.NewSlot(current, end))
		}

		next, err := current.AddMinutes(domain.SlotIntervalMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// resolveCandidateEnd вычисляет конец кандидатного слота.
// Второй результат false, когда фиксированная длительность выходит за закрытие.
func resolveCandidateEnd(pkg *domain.Package, start, closing types.TimeString) (types.TimeString, bool) {
	if pkg.Duration.IsFixed() {
		end, err := start.AddMinutes(int(pkg.Duration.FixedHours * 60))
		if err != nil || end.IsAfter(closing) {
			return "", false
		}
		return end, true
	}

	ceilingMinutes := int(domain.DefaultUnlimitedCeilingHours * 60)
	if pkg.Duration.MaxHours != nil {
		ceilingMinutes = int(*pkg.Duration.MaxHours * 60)
	}

	end := start.AddMinutesClamped(ceilingMinutes)
	if end.IsAfter(closing) {
		end = closing
	}
	return end, true
}

// candidateFits проверяет кандидата против кругов и буфера.
// Буферная проверка действует для любых пакетов, проверка кругов -
// только для требующих круг.
func candidateFits(snap *daySnapshot, pkg *domain.Package, numPeople int, start, end types.TimeString) bool {
	if bufferConflict(snap, start, end) {
		return false
	}

	if !pkg.RequiresWheel {
		return true
	}

	// Окно проверки кругов: все окно для фиксированных пакетов,
	// только первый час для безлимитных
	checkEnd := end
	if !pkg.Duration.IsFixed() {
		firstHour := start.AddMinutesClamped(60)
		if firstHour.IsBefore(checkEnd) {
			checkEnd = firstHour
		}
	}

	return availableWheelCount(snap, start, checkEnd) >= numPeople
}

// availableWheelCount считает свободные круги на окно [start, end),
// не больше общего числа кругов студии
func availableWheelCount(snap *daySnapshot, start, end types.TimeString) int {
	claimed := make(map[int64]bool)
	for _, cl := range snap.claims {
		if cl.Overlaps(start, end) {
			claimed[cl.WheelID] = true
		}
	}

	count := 0
	for _, w := range snap.wheels {
		if !claimed[w.ID] {
			count++
		}
	}

	if count > snap.cfg.TotalWheels {
		count = snap.cfg.TotalWheels
	}
	return count
}

// bufferConflict проверяет пересечение расширенного на буфер окна кандидата
// с сессиями фиксированной длительности. Сессии с открытым концом кандидатов
// не блокируют: их фактический конец неизвестен заранее.
func bufferConflict(snap *daySnapshot, start, end types.TimeString) bool {
	expandedStart := start.AddMinutesClamped(-snap.cfg.BufferMinutes)
	expandedEnd := end.AddMinutesClamped(snap.cfg.BufferMinutes)

	for _, b := range snap.fixedBookings {
		if b.SessionStart.IsBefore(expandedEnd) && b.SessionEnd.IsAfter(expandedStart) {
			return true
		}
	}
	return false
}
