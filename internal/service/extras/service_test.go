package extras

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	bookingRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/booking"
	extrasRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/extras"
	"github.com/imarastudio/IMS-BookingService/internal/service/extras/models"
	"github.com/imarastudio/IMS-BookingService/pkg/ptr"
)

type fakeExtrasRepo struct {
	firingCharges   map[int64]*domain.FiringCharge
	paintingOptions map[int64]*domain.PaintingGlazingOption
	extraServices   map[int64]*domain.ExtraService
	stored          []*domain.PostSessionService
}

func (f *fakeExtrasRepo) GetFiringCharge(_ context.Context, id int64) (*domain.FiringCharge, error) {
	c, ok := f.firingCharges[id]
	if !ok {
		return nil, extrasRepo.ErrCatalogEntryNotFound
	}
	return c, nil
}

func (f *fakeExtrasRepo) GetPaintingOption(_ context.Context, id int64) (*domain.PaintingGlazingOption, error) {
	o, ok := f.paintingOptions[id]
	if !ok {
		return nil, extrasRepo.ErrCatalogEntryNotFound
	}
	return o, nil
}

func (f *fakeExtrasRepo) GetExtraService(_ context.Context, id int64) (*domain.ExtraService, error) {
	e, ok := f.extraServices[id]
	if !ok {
		return nil, extrasRepo.ErrCatalogEntryNotFound
	}
	return e, nil
}

func (f *fakeExtrasRepo) CreatePostSession(_ context.Context, svc *domain.PostSessionService) (*domain.PostSessionService, error) {
	svc.ID = int64(len(f.stored) + 1)
	f.stored = append(f.stored, svc)
	return svc, nil
}

func (f *fakeExtrasRepo) ListByBooking(_ context.Context, bookingID int64) ([]*domain.PostSessionService, error) {
	var out []*domain.PostSessionService
	for _, svc := range f.stored {
		if svc.BookingID == bookingID {
			out = append(out, svc)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	ids map[int64]bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if !f.ids[id] {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &domain.Booking{ID: id}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeExtrasRepo) *Service {
	return NewService(repo, &fakeBookingRepo{ids: map[int64]bool{5: true}}, nopLogger{})
}

func TestCreateFiringService(t *testing.T) {
	repo := &fakeExtrasRepo{firingCharges: map[int64]*domain.FiringCharge{
		1: {ID: 1, Name: "Medium piece", Price: 500},
	}}
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), &models.CreatePostSessionRequest{
		BookingID:      5,
		ServiceType:    "firing",
		FiringChargeID: ptr.Ptr[int64](1),
		PieceCount:     3,
	})
	require.NoError(t, err)

	assert.Equal(t, 500.0, resp.UnitPrice)
	assert.Equal(t, 1500.0, resp.TotalPrice)
	assert.Equal(t, 3, resp.PieceCount)
	assert.False(t, resp.IsPaid)
}

func TestCreatePaintingPerSession(t *testing.T) {
	repo := &fakeExtrasRepo{paintingOptions: map[int64]*domain.PaintingGlazingOption{
		2: {ID: 2, Name: "Glazing session", PricePerSession: ptr.Ptr(2500.0)},
	}}
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), &models.CreatePostSessionRequest{
		BookingID:        5,
		ServiceType:      "glazing",
		PaintingOptionID: ptr.Ptr[int64](2),
		ItemCount:        4,
	})
	require.NoError(t, err)

	// Сессионная цена не умножается на число изделий
	assert.Equal(t, 2500.0, resp.TotalPrice)
}

func TestCreateExtraClayByQuantity(t *testing.T) {
	repo := &fakeExtrasRepo{extraServices: map[int64]*domain.ExtraService{
		3: {ID: 3, Name: "Extra clay", Price: 300},
	}}
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), &models.CreatePostSessionRequest{
		BookingID:      5,
		ServiceType:    "extra_clay",
		ExtraServiceID: ptr.Ptr[int64](3),
		Quantity:       2.5,
	})
	require.NoError(t, err)

	assert.Equal(t, 300.0, resp.UnitPrice)
	assert.Equal(t, 750.0, resp.TotalPrice)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(&fakeExtrasRepo{})

	tests := []struct {
		name    string
		req     *models.CreatePostSessionRequest
		wantErr error
	}{
		{"unknown type", &models.CreatePostSessionRequest{
			BookingID: 5, ServiceType: "massage",
		}, ErrInvalidInput},
		{"firing without charge", &models.CreatePostSessionRequest{
			BookingID: 5, ServiceType: "firing", PieceCount: 1,
		}, ErrInvalidInput},
		{"firing without pieces", &models.CreatePostSessionRequest{
			BookingID: 5, ServiceType: "firing", FiringChargeID: ptr.Ptr[int64](1),
		}, ErrInvalidInput},
		{"painting without option", &models.CreatePostSessionRequest{
			BookingID: 5, ServiceType: "painting", ItemCount: 2,
		}, ErrInvalidInput},
		{"extra without quantity", &models.CreatePostSessionRequest{
			BookingID: 5, ServiceType: "extra_clay", ExtraServiceID: ptr.Ptr[int64](3),
		}, ErrInvalidInput},
		{"missing catalog entry", &models.CreatePostSessionRequest{
			BookingID: 5, ServiceType: "firing", FiringChargeID: ptr.Ptr[int64](99), PieceCount: 1,
		}, ErrCatalogEntryNotFound},
		{"missing booking", &models.CreatePostSessionRequest{
			BookingID: 404, ServiceType: "firing", FiringChargeID: ptr.Ptr[int64](1), PieceCount: 1,
		}, ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListByBookingSumsTotals(t *testing.T) {
	repo := &fakeExtrasRepo{stored: []*domain.PostSessionService{
		{ID: 1, BookingID: 5, ServiceType: domain.PostSessionFiring, TotalPrice: 1500},
		{ID: 2, BookingID: 5, ServiceType: domain.PostSessionGlazing, TotalPrice: 2500},
		{ID: 3, BookingID: 9, ServiceType: domain.PostSessionFiring, TotalPrice: 500},
	}}
	svc := newTestService(repo)

	resp, err := svc.ListByBooking(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 4000.0, resp.TotalPrice)
}
