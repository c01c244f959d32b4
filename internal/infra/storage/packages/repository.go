package packages

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

var packageColumns = []string{
	"id",
	"code",
	"name",
	"package_type",
	"description",
	"price",
	"duration_mode",
	"fixed_hours",
	"max_hours",
	"requires_wheel",
	"clay_weight_kg",
	"max_participants",
	"display_features",
	"display_suggestion",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий пакетов услуг студии
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый пакет
func (r *Repository) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	var fixedHours *float64
	if pkg.Duration.IsFixed() {
		fixedHours = &pkg.Duration.FixedHours
	}

	query, args, err := psqlbuilder.Insert("packages").
		Columns(
			"code",
			"name",
			"package_type",
			"description",
			"price",
			"duration_mode",
			"fixed_hours",
			"max_hours",
			"requires_wheel",
			"clay_weight_kg",
			"max_participants",
			"display_features",
			"display_suggestion",
			"is_active",
		).
		Values(
			pkg.Code,
			pkg.Name,
			pkg.PackageType,
			pkg.Description,
			pkg.Price,
			pkg.Duration.Mode,
			fixedHours,
			pkg.Duration.MaxHours,
			pkg.RequiresWheel,
			pkg.ClayWeightKg,
			pkg.MaxParticipants,
			pkg.DisplayFeatures,
			pkg.DisplaySuggestion,
			pkg.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&pkg.ID, &createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: Create - %v", ErrDuplicateCode, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	pkg.CreatedAt = createdAt.Time
	pkg.UpdatedAt = updatedAt.Time

	return pkg, nil
}

// GetByID получает пакет по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanPackage(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByCode получает пакет по коду вида WHE-001
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Package, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanPackage(executor.QueryRowContext(ctx, query, args...), "GetByCode")
}

// ListActive получает активные пакеты для витрины
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Package, error) {
	return r.list(ctx, true)
}

// List получает все пакеты, включая неактивные
func (r *Repository) List(ctx context.Context) ([]*domain.Package, error) {
	return r.list(ctx, false)
}

func (r *Repository) list(ctx context.Context, activeOnly bool) ([]*domain.Package, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(packageColumns...).
		From("packages").
		OrderBy("package_type ASC, price ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPackages(rows)
}

// CountByCodePrefix считает пакеты с кодами, начинающимися с префикса.
// Используется для автогенерации кода: следующий код = PRE-(количество+1).
func (r *Repository) CountByCodePrefix(ctx context.Context, prefix string) (int, error) {
	executor := pgtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("packages").
		Where(squirrel.Like{"code": prefix + "%"}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByCodePrefix - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByCodePrefix - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет пакет. Код пакета неизменяем после создания.
func (r *Repository) Update(ctx context.Context, pkg *domain.Package) error {
	executor := pgtx.GetExecutor(ctx, r.db)

	var fixedHours *float64
	if pkg.Duration.IsFixed() {
		fixedHours = &pkg.Duration.FixedHours
	}

	query, args, err := psqlbuilder.Update("packages").
		Set("name", pkg.Name).
		Set("package_type", pkg.PackageType).
		Set("description", pkg.Description).
		Set("price", pkg.Price).
		Set("duration_mode", pkg.Duration.Mode).
		Set("fixed_hours", fixedHours).
		Set("max_hours", pkg.Duration.MaxHours).
		Set("requires_wheel", pkg.RequiresWheel).
		Set("clay_weight_kg", pkg.ClayWeightKg).
		Set("max_participants", pkg.MaxParticipants).
		Set("display_features", pkg.DisplayFeatures).
		Set("display_suggestion", pkg.DisplaySuggestion).
		Set("is_active", pkg.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": pkg.ID}).
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
		return ErrPackageNotFound
	}

	return nil
}

func (r *Repository) scanPackage(row *sql.Row, method string) (*domain.Package, error) {
	var pkg domain.Package
	var fixedHours sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&pkg.ID,
		&pkg.Code,
		&pkg.Name,
		&pkg.PackageType,
		&pkg.Description,
		&pkg.Price,
		&pkg.Duration.Mode,
		&fixedHours,
		&pkg.Duration.MaxHours,
		&pkg.RequiresWheel,
		&pkg.ClayWeightKg,
		&pkg.MaxParticipants,
		&pkg.DisplayFeatures,
		&pkg.DisplaySuggestion,
		&pkg.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan package: %v", ErrScanRow, method, err)
	}

	if fixedHours.Valid {
		pkg.Duration.FixedHours = fixedHours.Float64
	}
	pkg.CreatedAt = createdAt.Time
	pkg.UpdatedAt = updatedAt.Time

	return &pkg, nil
}

func (r *Repository) scanPackages(rows *sql.Rows) ([]*domain.Package, error) {
	result := make([]*domain.Package, 0)

	for rows.Next() {
		var pkg domain.Package
		var fixedHours sql.NullFloat64
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&pkg.ID,
			&pkg.Code,
			&pkg.Name,
			&pkg.PackageType,
			&pkg.Description,
			&pkg.Price,
			&pkg.Duration.Mode,
			&fixedHours,
			&pkg.Duration.MaxHours,
			&pkg.RequiresWheel,
			&pkg.ClayWeightKg,
			&pkg.MaxParticipants,
			&pkg.DisplayFeatures,
			&pkg.DisplaySuggestion,
			&pkg.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanPackages - scan row: %v", ErrScanRow, err)
		}

		if fixedHours.Valid {
			pkg.Duration.FixedHours = fixedHours.Float64
		}
		pkg.CreatedAt = createdAt.Time
		pkg.UpdatedAt = updatedAt.Time

		result = append(result, &pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPackages - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
