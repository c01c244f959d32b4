package studioconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/pkg/pgtx"
	"github.com/imarastudio/IMS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий конфигурации студии (singleton-строка с id = 1)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации студии
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает конфигурацию студии
func (r *Repository) Get(ctx context.Context) (*domain.StudioConfig, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"total_wheels",
		"booking_fee_per_person",
		"operating_time",
		"closing_time",
		"buffer_minutes",
		"max_daily_sessions",
		"wheel_session_duration",
		"is_maintenance_mode",
		"maintenance_message",
		"updated_at",
	).
		From("studio_config").
		Where(squirrel.Eq{"id": domain.StudioConfigID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.StudioConfig
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.TotalWheels,
		&config.BookingFeePerPerson,
		&config.OperatingTime,
		&config.ClosingTime,
		&config.BufferMinutes,
		&config.MaxDailySessions,
		&config.WheelSessionDuration,
		&config.IsMaintenanceMode,
		&config.MaintenanceMessage,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Update обновляет конфигурацию студии
func (r *Repository) Update(ctx context.Context, config *domain.StudioConfig) (*domain.StudioConfig, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("studio_config").
		Set("total_wheels", config.TotalWheels).
		Set("booking_fee_per_person", config.BookingFeePerPerson).
		Set("operating_time", config.OperatingTime).
		Set("closing_time", config.ClosingTime).
		Set("buffer_minutes", config.BufferMinutes).
		Set("max_daily_sessions", config.MaxDailySessions).
		Set("wheel_session_duration", config.WheelSessionDuration).
		Set("is_maintenance_mode", config.IsMaintenanceMode).
		Set("maintenance_message", config.MaintenanceMessage).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": domain.StudioConfigID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	config.ID = domain.StudioConfigID
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// EnsureDefault создает строку конфигурации с дефолтами, если её еще нет.
// Вызывается при старте сервиса: после этого Get всегда находит строку.
func (r *Repository) EnsureDefault(ctx context.Context) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	defaults := domain.DefaultStudioConfig()

	query, args, err := psqlbuilder.Insert("studio_config").
		Columns(
			"id",
			"total_wheels",
			"booking_fee_per_person",
			"operating_time",
			"closing_time",
			"buffer_minutes",
			"max_daily_sessions",
			"wheel_session_duration",
			"is_maintenance_mode",
		).
		Values(
			domain.StudioConfigID,
			defaults.TotalWheels,
			defaults.BookingFeePerPerson,
			defaults.OperatingTime,
			defaults.ClosingTime,
			defaults.BufferMinutes,
			defaults.MaxDailySessions,
			defaults.WheelSessionDuration,
			false,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: EnsureDefault - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: EnsureDefault - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
