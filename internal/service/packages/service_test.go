package packages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	packageRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/packages"
	"github.com/imarastudio/IMS-BookingService/internal/service/packages/models"
	"github.com/imarastudio/IMS-BookingService/pkg/ptr"
)

type fakePackageRepo struct {
	packages    map[int64]*domain.Package
	prefixCount int
	created     *domain.Package
	updated     *domain.Package
}

func (f *fakePackageRepo) Create(_ context.Context, pkg *domain.Package) (*domain.Package, error) {
	for _, existing := range f.packages {
		if existing.Code == pkg.Code {
			return nil, packageRepo.ErrDuplicateCode
		}
	}
	pkg.ID = 11
	f.created = pkg
	return pkg, nil
}

func (f *fakePackageRepo) GetByID(_ context.Context, id int64) (*domain.Package, error) {
	pkg, ok := f.packages[id]
	if !ok {
		return nil, packageRepo.ErrPackageNotFound
	}
	return pkg, nil
}

func (f *fakePackageRepo) GetByCode(_ context.Context, code string) (*domain.Package, error) {
	for _, pkg := range f.packages {
		if pkg.Code == code {
			return pkg, nil
		}
	}
	return nil, packageRepo.ErrPackageNotFound
}

func (f *fakePackageRepo) List(_ context.Context) ([]*domain.Package, error) {
	var out []*domain.Package
	for _, pkg := range f.packages {
		out = append(out, pkg)
	}
	return out, nil
}

func (f *fakePackageRepo) ListActive(_ context.Context) ([]*domain.Package, error) {
	var out []*domain.Package
	for _, pkg := range f.packages {
		if pkg.IsActive {
			out = append(out, pkg)
		}
	}
	return out, nil
}

func (f *fakePackageRepo) CountByCodePrefix(_ context.Context, _ string) (int, error) {
	return f.prefixCount, nil
}

func (f *fakePackageRepo) Update(_ context.Context, pkg *domain.Package) error {
	f.updated = pkg
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func storedPackage() *domain.Package {
	return &domain.Package{
		ID:              3,
		Code:            "WHE-001",
		Name:            "Wheel Throwing Session",
		PackageType:     domain.PackageWheelThrowing,
		Price:           3500,
		Duration:        domain.NewFixedDuration(1.5),
		RequiresWheel:   true,
		MaxParticipants: 8,
		IsActive:        true,
	}
}

func TestCreateGeneratesCode(t *testing.T) {
	repo := &fakePackageRepo{prefixCount: 2}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreatePackageRequest{
		Name:            "Wheel Throwing Session",
		PackageType:     "wheel_throwing",
		Price:           3500,
		DurationMode:    "fixed",
		FixedHours:      ptr.Ptr(1.5),
		RequiresWheel:   true,
		MaxParticipants: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, "WHE-003", resp.Code)
	assert.True(t, resp.IsActive)
	require.NotNil(t, resp.FixedHours)
	assert.Equal(t, 1.5, *resp.FixedHours)
	assert.Equal(t, "1 hour 30 minutes", resp.DurationDisplay)
}

func TestCreateKeepsExplicitCode(t *testing.T) {
	repo := &fakePackageRepo{}
	svc := NewService(repo, nopLogger{})

	maxHours := 8.0
	resp, err := svc.Create(context.Background(), &models.CreatePackageRequest{
		Code:            "HOB-099",
		Name:            "Hobbyist Open Studio",
		PackageType:     "hobbyist",
		Price:           5000,
		DurationMode:    "unlimited",
		MaxHours:        &maxHours,
		MaxParticipants: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "HOB-099", resp.Code)
	assert.Nil(t, resp.FixedHours)
}

func TestCreateDuplicateCode(t *testing.T) {
	repo := &fakePackageRepo{packages: map[int64]*domain.Package{3: storedPackage()}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreatePackageRequest{
		Code:            "WHE-001",
		Name:            "Another wheel package",
		PackageType:     "wheel_throwing",
		Price:           3000,
		DurationMode:    "fixed",
		FixedHours:      ptr.Ptr(1.0),
		MaxParticipants: 8,
	})
	assert.ErrorIs(t, err, ErrDuplicateCode)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&fakePackageRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  *models.CreatePackageRequest
	}{
		{"empty name", &models.CreatePackageRequest{
			PackageType: "wheel_throwing", DurationMode: "fixed", FixedHours: ptr.Ptr(1.0), MaxParticipants: 8,
		}},
		{"negative price", &models.CreatePackageRequest{
			Name: "x", PackageType: "wheel_throwing", Price: -1,
			DurationMode: "fixed", FixedHours: ptr.Ptr(1.0), MaxParticipants: 8,
		}},
		{"unknown duration mode", &models.CreatePackageRequest{
			Name: "x", PackageType: "wheel_throwing", DurationMode: "forever", MaxParticipants: 8,
		}},
		{"fixed without hours", &models.CreatePackageRequest{
			Name: "x", PackageType: "wheel_throwing", DurationMode: "fixed", MaxParticipants: 8,
		}},
		{"unlimited without ceiling", &models.CreatePackageRequest{
			Name: "x", PackageType: "wheel_throwing", DurationMode: "unlimited", MaxParticipants: 8,
		}},
		{"unknown package type", &models.CreatePackageRequest{
			Name: "x", PackageType: "yoga", DurationMode: "fixed", FixedHours: ptr.Ptr(1.0), MaxParticipants: 8,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListFiltersInactive(t *testing.T) {
	inactive := storedPackage()
	inactive.ID = 4
	inactive.Code = "WHE-002"
	inactive.IsActive = false

	repo := &fakePackageRepo{packages: map[int64]*domain.Package{
		3: storedPackage(),
		4: inactive,
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestUpdateAppliesPartialFields(t *testing.T) {
	repo := &fakePackageRepo{packages: map[int64]*domain.Package{3: storedPackage()}}
	svc := NewService(repo, nopLogger{})

	price := 4000.0
	inactive := false
	resp, err := svc.Update(context.Background(), 3, &models.UpdatePackageRequest{
		Price:    &price,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, 4000.0, resp.Price)
	assert.False(t, resp.IsActive)
	// Нетронутые поля сохраняются
	assert.Equal(t, "WHE-001", resp.Code)
	assert.Equal(t, "Wheel Throwing Session", resp.Name)
	require.NotNil(t, repo.updated)
}

func TestUpdateSwitchesDurationMode(t *testing.T) {
	repo := &fakePackageRepo{packages: map[int64]*domain.Package{3: storedPackage()}}
	svc := NewService(repo, nopLogger{})

	mode := "unlimited"
	maxHours := 6.0
	resp, err := svc.Update(context.Background(), 3, &models.UpdatePackageRequest{
		DurationMode: &mode,
		MaxHours:     &maxHours,
	})
	require.NoError(t, err)

	assert.Equal(t, "unlimited", resp.DurationMode)
	assert.Nil(t, resp.FixedHours)
	require.NotNil(t, resp.MaxHours)
	assert.Equal(t, 6.0, *resp.MaxHours)
}

func TestUpdateRejectsInconsistentDuration(t *testing.T) {
	repo := &fakePackageRepo{packages: map[int64]*domain.Package{3: storedPackage()}}
	svc := NewService(repo, nopLogger{})

	mode := "unlimited"
	_, err := svc.Update(context.Background(), 3, &models.UpdatePackageRequest{DurationMode: &mode})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.updated)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(&fakePackageRepo{}, nopLogger{})

	name := "renamed"
	_, err := svc.Update(context.Background(), 99, &models.UpdatePackageRequest{Name: &name})
	assert.ErrorIs(t, err, ErrPackageNotFound)
}
