package cancel_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	bookingRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/booking"
	rulesRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/rules"
	"github.com/imarastudio/IMS-BookingService/internal/integrations/mailer"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	booking        *domain.Booking
	cancelledID    int64
	cancelledNotes *string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, notes *string) error {
	f.cancelledID = id
	f.cancelledNotes = notes
	return nil
}

type fakeRuleRepo struct {
	rule *domain.BookingRule
}

func (f *fakeRuleRepo) GetActive(_ context.Context) (*domain.BookingRule, error) {
	if f.rule == nil {
		return nil, rulesRepo.ErrRuleNotFound
	}
	return f.rule, nil
}

type fakeNotifier struct {
	sent []mailer.Notification
}

func (f *fakeNotifier) Dispatch(n mailer.Notification) {
	f.sent = append(f.sent, n)
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func cancellableBooking() *domain.Booking {
	return &domain.Booking{
		ID:             5,
		Reference:      "IM-20260315-0001",
		CustomerName:   "Wanjiku Kamau",
		CustomerEmail:  "wanjiku@example.com",
		PackageName:    "Wheel Throwing Session",
		NumberOfPeople: 2,
		BookedDate:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		SessionStart:   types.TimeString("10:00"),
		SessionEnd:     types.TimeString("11:30"),
		Status:         domain.StatusConfirmed,
	}
}

func newTestUseCase(repo *fakeBookingRepo, rules *fakeRuleRepo, notifier *fakeNotifier, now time.Time) *UseCase {
	uc := NewUseCase(repo, rules, notifier, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecuteCancelsAndNotifies(t *testing.T) {
	repo := &fakeBookingRepo{booking: cancellableBooking()}
	notifier := &fakeNotifier{}

	// За двое суток до сессии: окно в 24 часа соблюдено
	now := time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, &fakeRuleRepo{}, notifier, now)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 5, Reason: "Travel plans changed"})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "IM-20260315-0001", resp.Reference)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)

	assert.Equal(t, int64(5), repo.cancelledID)
	require.NotNil(t, repo.cancelledNotes)
	assert.Equal(t, "Cancellation reason: Travel plans changed", *repo.cancelledNotes)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, mailer.KindBookingCancelled, notifier.sent[0].Kind)
	assert.Equal(t, "wanjiku@example.com", notifier.sent[0].To)
	assert.Equal(t, "Travel plans changed", notifier.sent[0].Reason)
}

func TestExecuteNoticeWindowBoundary(t *testing.T) {
	// Сессия 2026-03-15 10:00, окно по умолчанию 24 часа
	sessionStart := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"25 hours before", sessionStart.Add(-25 * time.Hour), nil},
		{"exactly 24 hours before", sessionStart.Add(-24 * time.Hour), ErrTooLate},
		{"23 hours before", sessionStart.Add(-23 * time.Hour), ErrTooLate},
		{"after session start", sessionStart.Add(2 * time.Hour), ErrTooLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{booking: cancellableBooking()}
			uc := newTestUseCase(repo, &fakeRuleRepo{}, &fakeNotifier{}, tt.now)

			_, err := uc.Execute(context.Background(), &Request{BookingID: 5})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.cancelledID)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecuteUsesActiveRuleNoticeHours(t *testing.T) {
	repo := &fakeBookingRepo{booking: cancellableBooking()}
	rules := &fakeRuleRepo{rule: &domain.BookingRule{CancellationHours: 48}}

	// 30 часов до сессии: хватает для окна по умолчанию, но не для правила в 48
	now := time.Date(2026, 3, 14, 4, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, rules, &fakeNotifier{}, now)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 5})
	assert.ErrorIs(t, err, ErrTooLate)
	assert.Contains(t, err.Error(), "48 hours")
}

func TestExecuteRejectsTerminalStatuses(t *testing.T) {
	for _, status := range domain.TerminalStatuses {
		booking := cancellableBooking()
		booking.Status = status
		repo := &fakeBookingRepo{booking: booking}

		uc := newTestUseCase(repo, &fakeRuleRepo{}, &fakeNotifier{}, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

		_, err := uc.Execute(context.Background(), &Request{BookingID: 5})
		assert.ErrorIs(t, err, ErrAlreadyTerminal, "status %s", status)
	}
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRuleRepo{}, &fakeNotifier{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		BookingID: 5,
		Reason:    strings.Repeat("x", domain.MaxCancellationReasonLen+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteBookingNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRuleRepo{}, &fakeNotifier{}, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{BookingID: 5})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAppendReason(t *testing.T) {
	assert.Nil(t, appendReason(nil, ""))

	got := appendReason(nil, "sick")
	require.NotNil(t, got)
	assert.Equal(t, "Cancellation reason: sick", *got)

	existing := "Prefers wheel 3"
	got = appendReason(&existing, "sick")
	require.NotNil(t, got)
	assert.Equal(t, "Prefers wheel 3\nCancellation reason: sick", *got)
}
