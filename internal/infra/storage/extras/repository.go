package extras

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/pkg/pgtx"
	"github.com/imarastudio/IMS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий прайс-каталога и послесессионных услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория дополнительных услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetFiringCharge получает тариф обжига по ID
func (r *Repository) GetFiringCharge(ctx context.Context, id int64) (*domain.FiringCharge, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "size_category", "description", "price",
		"hobbyist_price", "max_diameter_cm", "max_height_cm", "is_active",
	).
		From("firing_charges").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFiringCharge - build select query: %v", ErrBuildQuery, err)
	}

	var charge domain.FiringCharge
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&charge.ID,
		&charge.Name,
		&charge.SizeCategory,
		&charge.Description,
		&charge.Price,
		&charge.HobbyistPrice,
		&charge.MaxDiameterCm,
		&charge.MaxHeightCm,
		&charge.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCatalogEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetFiringCharge - scan row: %v", ErrScanRow, err)
	}

	return &charge, nil
}

// GetPaintingOption получает вариант росписи/глазуровки по ID
func (r *Repository) GetPaintingOption(ctx context.Context, id int64) (*domain.PaintingGlazingOption, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "option_type", "description", "price_per_item",
		"price_per_session", "duration_hours", "includes_paints", "is_active",
	).
		From("painting_glazing_options").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPaintingOption - build select query: %v", ErrBuildQuery, err)
	}

	var option domain.PaintingGlazingOption
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&option.ID,
		&option.Name,
		&option.OptionType,
		&option.Description,
		&option.PricePerItem,
		&option.PricePerSession,
		&option.DurationHours,
		&option.IncludesPaints,
		&option.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCatalogEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPaintingOption - scan row: %v", ErrScanRow, err)
	}

	return &option, nil
}

// GetExtraService получает дополнительную услугу по ID
func (r *Repository) GetExtraService(ctx context.Context, id int64) (*domain.ExtraService, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "service_type", "description", "price", "unit", "is_active",
	).
		From("extra_services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetExtraService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.ExtraService
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.Name,
		&service.ServiceType,
		&service.Description,
		&service.Price,
		&service.Unit,
		&service.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCatalogEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetExtraService - scan row: %v", ErrScanRow, err)
	}

	return &service, nil
}

// CreatePostSession создает послесессионную услугу по бронированию
func (r *Repository) CreatePostSession(ctx context.Context, svc *domain.PostSessionService) (*domain.PostSessionService, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("post_session_services").
		Columns(
			"booking_id",
			"service_type",
			"firing_charge_id",
			"piece_count",
			"piece_description",
			"painting_option_id",
			"item_count",
			"extra_service_id",
			"quantity",
			"unit_price",
			"total_price",
			"is_paid",
			"is_completed",
			"notes",
		).
		Values(
			svc.BookingID,
			svc.ServiceType,
			svc.FiringChargeID,
			svc.PieceCount,
			svc.PieceDescription,
			svc.PaintingOptionID,
			svc.ItemCount,
			svc.ExtraServiceID,
			svc.Quantity,
			svc.UnitPrice,
			svc.TotalPrice,
			svc.IsPaid,
			svc.IsCompleted,
			svc.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePostSession - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &createdAt, &updatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePostSession - execute insert: %v", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return svc, nil
}

// ListByBooking получает послесессионные услуги бронирования
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.PostSessionService, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"service_type",
		"firing_charge_id",
		"piece_count",
		"piece_description",
		"painting_option_id",
		"item_count",
		"extra_service_id",
		"quantity",
		"unit_price",
		"total_price",
		"is_paid",
		"is_completed",
		"notes",
		"created_at",
		"updated_at",
	).
		From("post_session_services").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.PostSessionService, 0)
	for rows.Next() {
		var svc domain.PostSessionService
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&svc.ID,
			&svc.BookingID,
			&svc.ServiceType,
			&svc.FiringChargeID,
			&svc.PieceCount,
			&svc.PieceDescription,
			&svc.PaintingOptionID,
			&svc.ItemCount,
			&svc.ExtraServiceID,
			&svc.Quantity,
			&svc.UnitPrice,
			&svc.TotalPrice,
			&svc.IsPaid,
			&svc.IsCompleted,
			&svc.Notes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan row: %v", ErrScanRow, err)
		}

		svc.CreatedAt = createdAt.Time
		svc.UpdatedAt = updatedAt.Time

		result = append(result, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
