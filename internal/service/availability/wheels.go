package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// AvailableWheels вычисляет пул кругов, свободных на окно [start, end) даты,
// по возрастанию номера. Круг выпадает из пула, если он неактивен, в статусе
// maintenance/reserved, либо уже занят пересекающейся заявкой бронирования
// со статусом confirmed/pending. Заявки excludeBookingID возвращают его
// собственные круги в пул.
func (c *Checker) AvailableWheels(
	ctx context.Context,
	date time.Time,
	start, end types.TimeString,
	excludeBookingID *int64,
) ([]*domain.Wheel, error) {
	wheels, err := c.wheelRepo.ListBookable(ctx)
	if err != nil {
		return nil, fmt.Errorf("AvailableWheels - list wheels: %w", err)
	}

	claims, err := c.claimRepo.GetActiveByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("AvailableWheels - claims for date: %w", err)
	}

	claimed := make(map[int64]bool)
	for _, cl := range claims {
		if excludeBookingID != nil && cl.BookingID == *excludeBookingID {
			continue
		}
		if cl.Overlaps(start, end) {
			claimed[cl.WheelID] = true
		}
	}

	pool := make([]*domain.Wheel, 0, len(wheels))
	for _, w := range wheels {
		if claimed[w.ID] {
			continue
		}
		pool = append(pool, w)
	}

	return pool, nil
}
