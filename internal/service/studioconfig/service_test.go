package studioconfig

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	configRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/studioconfig"
	"github.com/imarastudio/IMS-BookingService/internal/service/studioconfig/models"
	"github.com/imarastudio/IMS-BookingService/pkg/ptr"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

type fakeConfigRepo struct {
	cfg *domain.StudioConfig

	updated *domain.StudioConfig
}

func (f *fakeConfigRepo) Get(_ context.Context) (*domain.StudioConfig, error) {
	if f.cfg == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	copied := *f.cfg
	return &copied, nil
}

func (f *fakeConfigRepo) Update(_ context.Context, cfg *domain.StudioConfig) (*domain.StudioConfig, error) {
	cfg.UpdatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.updated = cfg
	return cfg, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func currentConfig() *domain.StudioConfig {
	return &domain.StudioConfig{
		ID:                   1,
		TotalWheels:          8,
		BookingFeePerPerson:  1000,
		OperatingTime:        types.TimeString("08:00"),
		ClosingTime:          types.TimeString("18:00"),
		BufferMinutes:        15,
		MaxDailySessions:     20,
		WheelSessionDuration: 60,
	}
}

func TestGetConfig(t *testing.T) {
	svc := NewService(&fakeConfigRepo{cfg: currentConfig()}, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, resp.TotalWheels)
	assert.Equal(t, "08:00", resp.OperatingTime)
	assert.Equal(t, "18:00", resp.ClosingTime)
	assert.False(t, resp.IsMaintenanceMode)
}

func TestGetConfigNotFound(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, nopLogger{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestUpdateConfigPartial(t *testing.T) {
	repo := &fakeConfigRepo{cfg: currentConfig()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		TotalWheels:   ptr.Ptr(10),
		BufferMinutes: ptr.Ptr(30),
	})
	require.NoError(t, err)

	assert.Equal(t, 10, resp.TotalWheels)
	assert.Equal(t, 30, resp.BufferMinutes)
	// Незаданные поля сохраняют текущие значения
	assert.Equal(t, "08:00", resp.OperatingTime)
	assert.Equal(t, 20, resp.MaxDailySessions)
	assert.InDelta(t, 1000, resp.BookingFeePerPerson, 0.001)

	require.NotNil(t, repo.updated)
	assert.Equal(t, 10, repo.updated.TotalWheels)
}

func TestUpdateConfigMaintenanceMode(t *testing.T) {
	repo := &fakeConfigRepo{cfg: currentConfig()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		IsMaintenanceMode:  ptr.Ptr(true),
		MaintenanceMessage: ptr.Ptr("Kiln repairs until Friday"),
	})
	require.NoError(t, err)

	assert.True(t, resp.IsMaintenanceMode)
	require.NotNil(t, resp.MaintenanceMessage)
	assert.Equal(t, "Kiln repairs until Friday", *resp.MaintenanceMessage)
}

func TestUpdateConfigOperatingHours(t *testing.T) {
	repo := &fakeConfigRepo{cfg: currentConfig()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		OperatingTime: ptr.Ptr("09:00"),
		ClosingTime:   ptr.Ptr("21:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.OperatingTime)
	assert.Equal(t, "21:00", resp.ClosingTime)
}

func TestUpdateConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateConfigRequest
	}{
		{
			name: "negative wheels",
			req:  &models.UpdateConfigRequest{TotalWheels: ptr.Ptr(-1)},
		},
		{
			name: "negative fee",
			req:  &models.UpdateConfigRequest{BookingFeePerPerson: ptr.Ptr(-50.0)},
		},
		{
			name: "negative buffer",
			req:  &models.UpdateConfigRequest{BufferMinutes: ptr.Ptr(-5)},
		},
		{
			name: "zero daily sessions",
			req:  &models.UpdateConfigRequest{MaxDailySessions: ptr.Ptr(0)},
		},
		{
			name: "session shorter than slot grid",
			req:  &models.UpdateConfigRequest{WheelSessionDuration: ptr.Ptr(domain.SlotIntervalMinutes - 1)},
		},
		{
			name: "malformed operating time",
			req:  &models.UpdateConfigRequest{OperatingTime: ptr.Ptr("8am")},
		},
		{
			name: "malformed closing time",
			req:  &models.UpdateConfigRequest{ClosingTime: ptr.Ptr("25:00")},
		},
		{
			name: "closing before opening",
			req: &models.UpdateConfigRequest{
				OperatingTime: ptr.Ptr("18:00"),
				ClosingTime:   ptr.Ptr("08:00"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeConfigRepo{cfg: currentConfig()}
			svc := NewService(repo, nopLogger{})

			_, err := svc.Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.updated)
		})
	}
}

func TestUpdateConfigNotFound(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateConfigRequest{TotalWheels: ptr.Ptr(10)})
	assert.ErrorIs(t, err, ErrConfigNotFound)
}
