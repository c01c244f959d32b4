package rules

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/pkg/pgtx"
	"github.com/imarastudio/IMS-BookingService/pkg/psqlbuilder"
)

var ruleColumns = []string{
	"id",
	"name",
	"description",
	"booking_fee_percent",
	"cancellation_hours",
	"reschedule_hours",
	"max_group_size",
	"booking_validity_days",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил бронирования (справочные данные)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive получает активное правило бронирования.
// При нескольких активных строках берется последняя созданная.
func (r *Repository) GetActive(ctx context.Context) (*domain.BookingRule, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("booking_rules").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanRule(executor.QueryRowContext(ctx, query, args...), "GetActive")
}

// Create создает новое правило бронирования
func (r *Repository) Create(ctx context.Context, rule *domain.BookingRule) (*domain.BookingRule, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_rules").
		Columns(
			"name",
			"description",
			"booking_fee_percent",
			"cancellation_hours",
			"reschedule_hours",
			"max_group_size",
			"booking_validity_days",
			"is_active",
		).
		Values(
			rule.Name,
			rule.Description,
			rule.BookingFeePercent,
			rule.CancellationHours,
			rule.RescheduleHours,
			rule.MaxGroupSize,
			rule.BookingValidityDays,
			rule.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// List получает все правила бронирования
func (r *Repository) List(ctx context.Context) ([]*domain.BookingRule, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("booking_rules").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingRule, 0)
	for rows.Next() {
		var rule domain.BookingRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.Name,
			&rule.Description,
			&rule.BookingFeePercent,
			&rule.CancellationHours,
			&rule.RescheduleHours,
			&rule.MaxGroupSize,
			&rule.BookingValidityDays,
			&rule.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		result = append(result, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func (r *Repository) scanRule(row *sql.Row, method string) (*domain.BookingRule, error) {
	var rule domain.BookingRule
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.Name,
		&rule.Description,
		&rule.BookingFeePercent,
		&rule.CancellationHours,
		&rule.RescheduleHours,
		&rule.MaxGroupSize,
		&rule.BookingValidityDays,
		&rule.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan rule: %v", ErrScanRow, method, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
