package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

type fakeExecutor struct {
	rows int64

	query string
	args  []interface{}
}

func (f *fakeExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.query = query
	f.args = args
	return fakeResult{rows: f.rows}, nil
}

func (f *fakeExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestSetCheckinKeepsRecordedActualStart(t *testing.T) {
	executor := &fakeExecutor{rows: 1}
	repo := NewRepository(executor)

	at := time.Date(2026, 3, 14, 10, 5, 0, 0, time.UTC)
	require.NoError(t, repo.SetCheckin(context.Background(), 7, at))

	// actual_start_time пишется только если ещё пуст
	assert.Contains(t, executor.query, "checkin_time = $1")
	assert.Contains(t, executor.query, "actual_start_time = COALESCE(actual_start_time, $2)")
	require.Len(t, executor.args, 3)
	assert.Equal(t, at, executor.args[0])
	assert.Equal(t, at, executor.args[1])
	assert.Equal(t, int64(7), executor.args[2])
}

func TestSetCheckoutKeepsRecordedActualEnd(t *testing.T) {
	executor := &fakeExecutor{rows: 1}
	repo := NewRepository(executor)

	at := time.Date(2026, 3, 14, 11, 40, 0, 0, time.UTC)
	require.NoError(t, repo.SetCheckout(context.Background(), 7, at, domain.StatusCompleted))

	assert.Contains(t, executor.query, "checkout_time = $1")
	assert.Contains(t, executor.query, "actual_end_time = COALESCE(actual_end_time, $2)")
	require.Len(t, executor.args, 4)
	assert.Equal(t, at, executor.args[1])
	assert.Equal(t, domain.StatusCompleted, executor.args[2])
	assert.Equal(t, int64(7), executor.args[3])
}

func TestSetCheckinNotFound(t *testing.T) {
	executor := &fakeExecutor{rows: 0}
	repo := NewRepository(executor)

	err := repo.SetCheckin(context.Background(), 99, time.Now())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
