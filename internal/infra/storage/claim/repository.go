package claim

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/pkg/pgtx"
	"github.com/imarastudio/IMS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий заявок на круги (таблица wheel_bookings)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок на круги
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReplaceForBooking заменяет набор заявок бронирования: сначала удаляет все
// существующие, затем вставляет новые. Деструктивная замена вместо диффа
// упрощает перенос бронирования и повторное назначение кругов.
// Должна вызываться внутри транзакции вместе с проверкой доступности.
func (r *Repository) ReplaceForBooking(ctx context.Context, bookingID int64, claims []*domain.WheelClaim) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("wheel_bookings").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForBooking - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForBooking - execute delete: %v", ErrExecQuery, err)
	}

	if len(claims) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("wheel_bookings").
		Columns("booking_id", "wheel_id", "start_time", "end_time")

	for _, c := range claims {
		insertBuilder = insertBuilder.Values(bookingID, c.WheelID, c.StartTime, c.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForBooking - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%w: ReplaceForBooking - %v", ErrDuplicateClaim, err)
		}
		return fmt.Errorf("%w: ReplaceForBooking - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByBookingID получает заявки бронирования, отсортированные по номеру круга
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.WheelClaim, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"wb.id",
		"wb.booking_id",
		"wb.wheel_id",
		"w.wheel_number",
		"wb.start_time",
		"wb.end_time",
		"b.status",
		"wb.created_at",
	).
		From("wheel_bookings wb").
		Join("wheels w ON w.id = wb.wheel_id").
		Join("bookings b ON b.id = wb.booking_id").
		Where(squirrel.Eq{"wb.booking_id": bookingID}).
		OrderBy("w.wheel_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanClaims(rows)
}

// GetActiveByDate получает заявки всех бронирований даты со статусами,
// занимающими ресурсы студии. Это вход движка доступности: каждая заявка
// несет свое временное окно и номер круга.
//
// Внутри транзакции выборка блокирует строки (FOR UPDATE OF wb):
// вместе с блокировкой бронирований дня это закрывает гонку назначения кругов.
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.WheelClaim, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(domain.CapacityStatuses))
	for i, s := range domain.CapacityStatuses {
		statusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"wb.id",
		"wb.booking_id",
		"wb.wheel_id",
		"w.wheel_number",
		"wb.start_time",
		"wb.end_time",
		"b.status",
		"wb.created_at",
	).
		From("wheel_bookings wb").
		Join("wheels w ON w.id = wb.wheel_id").
		Join("bookings b ON b.id = wb.booking_id").
		Where(squirrel.Eq{"b.booked_date": date}).
		Where(squirrel.Eq{"b.status": statusStrings}).
		OrderBy("w.wheel_number ASC, wb.start_time ASC")

	if pgtx.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF wb")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanClaims(rows)
}

// DeleteByBookingID удаляет все заявки бронирования (отмена, no-show)
func (r *Repository) DeleteByBookingID(ctx context.Context, bookingID int64) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("wheel_bookings").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByBookingID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByBookingID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) scanClaims(rows *sql.Rows) ([]*domain.WheelClaim, error) {
	claims := make([]*domain.WheelClaim, 0)

	for rows.Next() {
		var claim domain.WheelClaim
		var createdAt sql.NullTime

		err := rows.Scan(
			&claim.ID,
			&claim.BookingID,
			&claim.WheelID,
			&claim.WheelNumber,
			&claim.StartTime,
			&claim.EndTime,
			&claim.BookingStatus,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanClaims - scan row: %v", ErrScanRow, err)
		}

		claim.CreatedAt = createdAt.Time
		claims = append(claims, &claim)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanClaims - rows error: %v", ErrScanRow, err)
	}

	return claims, nil
}
