package wheel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/pkg/pgtx"
	"github.com/imarastudio/IMS-BookingService/pkg/psqlbuilder"
)

var wheelColumns = []string{
	"id",
	"wheel_number",
	"name",
	"status",
	"is_active",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий гончарных кругов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кругов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый круг
func (r *Repository) Create(ctx context.Context, wheel *domain.Wheel) (*domain.Wheel, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("wheels").
		Columns("wheel_number", "name", "status", "is_active", "notes").
		Values(wheel.WheelNumber, wheel.Name, wheel.Status, wheel.IsActive, wheel.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&wheel.ID, &createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: Create - %v", ErrDuplicateNumber, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	wheel.CreatedAt = createdAt.Time
	wheel.UpdatedAt = updatedAt.Time

	return wheel, nil
}

// GetByID получает круг по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Wheel, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(wheelColumns...).
		From("wheels").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanWheel(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByNumbers получает круги по номерам (для явного назначения кругов)
func (r *Repository) GetByNumbers(ctx context.Context, numbers []int) ([]*domain.Wheel, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(wheelColumns...).
		From("wheels").
		Where(squirrel.Eq{"wheel_number": numbers}).
		OrderBy("wheel_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumbers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumbers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWheels(rows)
}

// ListBookable получает активные круги в статусе available, по возрастанию номера.
// Это пул кругов движка доступности: порядок определяет автоназначение.
func (r *Repository) ListBookable(ctx context.Context) ([]*domain.Wheel, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(wheelColumns...).
		From("wheels").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Eq{"status": domain.WheelAvailable}).
		OrderBy("wheel_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBookable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWheels(rows)
}

// List получает все круги, включая неактивные
func (r *Repository) List(ctx context.Context) ([]*domain.Wheel, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(wheelColumns...).
		From("wheels").
		OrderBy("wheel_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWheels(rows)
}

// Update обновляет статус, активность и заметки круга.
// Номер круга неизменяем после создания.
func (r *Repository) Update(ctx context.Context, wheel *domain.Wheel) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("wheels").
		Set("name", wheel.Name).
		Set("status", wheel.Status).
		Set("is_active", wheel.IsActive).
		Set("notes", wheel.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": wheel.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWheelNotFound
	}

	return nil
}

// Delete удаляет круг. FK RESTRICT в wheel_bookings не даст удалить круг
// с историей заявок: в этом случае возвращается ErrWheelInUse, правильный
// путь для такого круга - деактивация.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("wheels").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return fmt.Errorf("%w: Delete - %v", ErrWheelInUse, err)
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWheelNotFound
	}

	return nil
}

func (r *Repository) scanWheel(row *sql.Row, method string) (*domain.Wheel, error) {
	var wheel domain.Wheel
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&wheel.ID,
		&wheel.WheelNumber,
		&wheel.Name,
		&wheel.Status,
		&wheel.IsActive,
		&wheel.Notes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWheelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan wheel: %v", ErrScanRow, method, err)
	}

	wheel.CreatedAt = createdAt.Time
	wheel.UpdatedAt = updatedAt.Time

	return &wheel, nil
}

func (r *Repository) scanWheels(rows *sql.Rows) ([]*domain.Wheel, error) {
	wheels := make([]*domain.Wheel, 0)

	for rows.Next() {
		var wheel domain.Wheel
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&wheel.ID,
			&wheel.WheelNumber,
			&wheel.Name,
			&wheel.Status,
			&wheel.IsActive,
			&wheel.Notes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanWheels - scan row: %v", ErrScanRow, err)
		}

		wheel.CreatedAt = createdAt.Time
		wheel.UpdatedAt = updatedAt.Time

		wheels = append(wheels, &wheel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWheels - rows error: %v", ErrScanRow, err)
	}

	return wheels, nil
}
