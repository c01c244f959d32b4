package availability

import (
	"context"
	"fmt"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// Assign назначает круги бронированию и возвращает номера назначенных кругов.
// Должен вызываться внутри той же транзакции, что и проверка доступности.
//
// Правила:
// - Пакет без кругов: no-op, пустой результат
// - Явные номера: каждый круг обязан быть и bookable, и в свободном пуле
//   окна - иначе вся операция падает с указанием виновного круга
// - Без явных номеров: первые min(люди, свободно) кругов по возрастанию номера
// - Замена деструктивная: все прежние заявки бронирования удаляются,
//   затем создается новый набор (повторный вызов идемпотентен)
func (c *Checker) Assign(
	ctx context.Context,
	cfg *domain.StudioConfig,
	booking *domain.Booking,
	pkg *domain.Package,
	wheelNumbers []int,
) ([]int, error) {
	if !pkg.RequiresWheel {
		return []int{}, nil
	}

	// Окно заявки может быть уже окна сессии (комбо-пакеты)
	claimStart, claimEnd := domain.ResolveClaimWindow(booking, pkg, cfg)

	pool, err := c.AvailableWheels(ctx, booking.BookedDate, claimStart, claimEnd, &booking.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Assign - wheel pool: %v", ErrInternal, err)
	}

	poolByNumber := make(map[int]*domain.Wheel, len(pool))
	for _, w := range pool {
		poolByNumber[w.WheelNumber] = w
	}

	var selected []*domain.Wheel

	if len(wheelNumbers) > 0 {
		// Явное назначение: все или ничего
		requested, err := c.wheelRepo.GetByNumbers(ctx, wheelNumbers)
		if err != nil {
			return nil, fmt.Errorf("%w: Assign - fetch requested wheels: %v", ErrInternal, err)
		}

		byNumber := make(map[int]*domain.Wheel, len(requested))
		for _, w := range requested {
			byNumber[w.WheelNumber] = w
		}

		for _, num := range wheelNumbers {
			w, ok := byNumber[num]
			if !ok {
				return nil, fmt.Errorf("%w: wheel %d", ErrWheelUnknown, num)
			}
			if !w.IsBookable() {
				return nil, fmt.Errorf("%w: wheel %d", ErrWheelNotBookable, num)
			}
			if _, inPool := poolByNumber[num]; !inPool {
				return nil, fmt.Errorf("%w: wheel %d", ErrWheelNotInPool, num)
			}
			selected = append(selected, w)
		}
	} else {
		// Автоназначение: первые свободные круги по возрастанию номера
		need := booking.NumberOfPeople
		if need > len(pool) {
			need = len(pool)
		}
		selected = pool[:need]
	}

	claims := make([]*domain.WheelClaim, 0, len(selected))
	for _, w := range selected {
		claims = append(claims, &domain.WheelClaim{
			BookingID:   booking.ID,
			WheelID:     w.ID,
			WheelNumber: w.WheelNumber,
			StartTime:   claimStart,
			EndTime:     claimEnd,
		})
	}

	if err := c.claimRepo.ReplaceForBooking(ctx, booking.ID, claims); err != nil {
		return nil, fmt.Errorf("%w: Assign - replace claims: %v", ErrInternal, err)
	}

	assigned := make([]int, 0, len(claims))
	for _, cl := range claims {
		assigned = append(assigned, cl.WheelNumber)
	}

	c.logger.Info("Assign: booking id=%d assigned wheels %v for %s-%s",
		booking.ID, assigned, claimStart.String(), claimEnd.String())

	return assigned, nil
}
