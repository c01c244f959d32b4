package booking

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
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

var bookingColumns = []string{
	"id",
	"booking_reference",
	"customer_name",
	"customer_phone",
	"customer_email",
	"package_id",
	"number_of_people",
	"booked_date",
	"session_start",
	"session_end",
	"package_name",
	"requires_wheel",
	"has_fixed_duration",
	"package_amount",
	"booking_fee",
	"total_amount",
	"status",
	"actual_start_time",
	"actual_end_time",
	"checkin_time",
	"checkout_time",
	"booking_channel",
	"special_requests",
	"notes",
	"created_at",
	"updated_at",
	"confirmed_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
//
// Создание бронирования всегда должно идти внутри serializable-транзакции
// вместе с проверкой доступности и назначением кругов: чек и запись в один
// атомарный шаг закрывают гонку двух клиентов за последний круг.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_reference",
			"customer_name",
			"customer_phone",
			"customer_email",
			"package_id",
			"number_of_people",
			"booked_date",
			"session_start",
			"session_end",
			"package_name",
			"requires_wheel",
			"has_fixed_duration",
			"package_amount",
			"booking_fee",
			"total_amount",
			"status",
			"booking_channel",
			"special_requests",
			"notes",
		).
		Values(
			booking.Reference,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CustomerEmail,
			booking.PackageID,
			booking.NumberOfPeople,
			booking.BookedDate,
			booking.SessionStart,
			booking.SessionEnd,
			booking.PackageName,
			booking.RequiresWheel,
			booking.HasFixedDuration,
			booking.PackageAmount,
			booking.BookingFee,
			booking.TotalAmount,
			booking.Status,
			booking.BookingChannel,
			booking.SpecialRequests,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: Create - %v", ErrDuplicateReference, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByReference получает бронирование по номеру вида IM-YYYYMMDD-NNNN
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_reference": reference}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByReference")
}

// GetByCustomer получает бронирования клиента по телефону, опционально и по email
func (r *Repository) GetByCustomer(ctx context.Context, phone string, email *string) ([]*domain.Booking, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("booked_date DESC, session_start DESC")

	if email != nil && *email != "" {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"customer_phone": phone},
			squirrel.Eq{"customer_email": *email},
		})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_phone": phone})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByDateWithFilter получает бронирования на дату с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Статусам (Statuses) - опционально, пустой слайс означает все статусы
// - Только пакетам с кругами (RequiresWheelOnly)
// - Только пакетам фиксированной длительности (FixedDurationOnly)
//
// Примеры использования:
//
// 1. Бронирования, занимающие ресурсы студии (проверка дневного лимита):
//    filter := domain.DailyBookingsFilter{Date: date, Statuses: domain.CapacityStatuses}
//
// 2. Буферная проверка между сессиями:
//    filter := domain.DailyBookingsFilter{Date: date, Statuses: domain.CapacityStatuses, FixedDurationOnly: true}
//
// 3. Полное расписание дня, все статусы:
//    filter := domain.DailyBookingsFilter{Date: date}
//
// Внутри транзакции выборка блокирует строки дня (FOR UPDATE):
// это используется при создании бронирования против race condition.
func (r *Repository) GetByDateWithFilter(ctx context.Context, filter domain.DailyBookingsFilter) ([]*domain.Booking, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booked_date": filter.Date}).
		OrderBy("session_start ASC")

	if len(filter.Statuses) > 0 {
		statusStrings := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings})
	}

	if filter.RequiresWheelOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"requires_wheel": true})
	}
	if filter.FixedDurationOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"has_fixed_duration": true})
	}

	if pgtx.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CountByReferencePrefix считает бронирования с номерами, начинающимися с префикса.
// Используется для генерации порядкового номера в IM-YYYYMMDD-NNNN:
// следующий номер дня = количество + 1.
func (r *Repository) CountByReferencePrefix(ctx context.Context, prefix string) (int, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Like{"booking_reference": prefix + "%"}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByReferencePrefix - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByReferencePrefix - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateSchedule переносит бронирование на новую дату и время
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, date time.Time, start, end types.TimeString) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booked_date", date).
		Set("session_start", start).
		Set("session_end", end).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateSchedule")
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// Confirm подтверждает оплату бронирования
func (r *Repository) Confirm(ctx context.Context, id int64) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusConfirmed).
		Set("confirmed_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Confirm - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Confirm")
}

// Cancel отменяет бронирование, перезаписывая заметки (причина отмены
// дописывается к заметкам на уровне сервиса)
func (r *Repository) Cancel(ctx context.Context, id int64, notes *string) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// SetCheckin отмечает фактическое прибытие клиента.
// Повторный вызов обновляет только checkin_time: уже записанное
// actual_start_time сохраняется.
func (r *Repository) SetCheckin(ctx context.Context, id int64, at time.Time) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("checkin_time", at).
		Set("actual_start_time", squirrel.Expr("COALESCE(actual_start_time, ?)", at)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCheckin - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetCheckin")
}

// SetCheckout отмечает фактическое завершение сессии.
// Повторный вызов обновляет только checkout_time: уже записанное
// actual_end_time сохраняется.
func (r *Repository) SetCheckout(ctx context.Context, id int64, at time.Time, status domain.PaymentStatus) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("checkout_time", at).
		Set("actual_end_time", squirrel.Expr("COALESCE(actual_end_time, ?)", at)).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCheckout - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetCheckout")
}

// Delete удаляет бронирование (физическое удаление, использовать осторожно)
// Рекомендуется использовать Cancel вместо физического удаления для сохранения истории
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) scanBooking(row *sql.Row, method string) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerEmail,
		&booking.PackageID,
		&booking.NumberOfPeople,
		&booking.BookedDate,
		&booking.SessionStart,
		&booking.SessionEnd,
		&booking.PackageName,
		&booking.RequiresWheel,
		&booking.HasFixedDuration,
		&booking.PackageAmount,
		&booking.BookingFee,
		&booking.TotalAmount,
		&booking.Status,
		&booking.ActualStartTime,
		&booking.ActualEndTime,
		&booking.CheckinTime,
		&booking.CheckoutTime,
		&booking.BookingChannel,
		&booking.SpecialRequests,
		&booking.Notes,
		&createdAt,
		&updatedAt,
		&booking.ConfirmedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.Reference,
			&booking.CustomerName,
			&booking.CustomerPhone,
			&booking.CustomerEmail,
			&booking.PackageID,
			&booking.NumberOfPeople,
			&booking.BookedDate,
			&booking.SessionStart,
			&booking.SessionEnd,
			&booking.PackageName,
			&booking.RequiresWheel,
			&booking.HasFixedDuration,
			&booking.PackageAmount,
			&booking.BookingFee,
			&booking.TotalAmount,
			&booking.Status,
			&booking.ActualStartTime,
			&booking.ActualEndTime,
			&booking.CheckinTime,
			&booking.CheckoutTime,
			&booking.BookingChannel,
			&booking.SpecialRequests,
			&booking.Notes,
			&createdAt,
			&updatedAt,
			&booking.ConfirmedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
