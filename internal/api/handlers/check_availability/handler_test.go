package check_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/imarastudio/IMS-BookingService/internal/usecase/check_availability"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

type fakeUseCase struct {
	resp *checkAvailability.Response
	err  error

	lastReq *checkAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/availability/check", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleAvailable(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{
		IsAvailable:     true,
		Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("11:30"),
		PackageName:     "Wheel Throwing Session",
		NumPeople:       2,
		DurationDisplay: "1 hour 30 minutes",
		WheelAvailable:  true,
	}}

	rec := doRequest(t, uc, `{"package_id":1,"date":"2026-03-14","start_time":"10:00","num_people":2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["is_available"])
	assert.Equal(t, "11:30", body["end_time"])
	assert.NotContains(t, body, "reason")

	// Дата и время прокинуты в use case распарсенными
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(1), uc.lastReq.PackageID)
	assert.Equal(t, types.TimeString("10:00"), uc.lastReq.StartTime)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), uc.lastReq.Date)
}

func TestHandleUnavailableIsStillOK(t *testing.T) {
	reason := "Only 1 of 8 wheels available for this time slot"
	uc := &fakeUseCase{resp: &checkAvailability.Response{
		IsAvailable: false,
		Reason:      &reason,
	}}

	rec := doRequest(t, uc, `{"package_id":1,"date":"2026-03-14","start_time":"10:00","num_people":2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["is_available"])
	assert.Equal(t, reason, body["reason"])
}

func TestHandleBadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "malformed json",
			body:    `{"package_id":`,
			message: msgInvalidRequestBody,
		},
		{
			name:    "unknown field",
			body:    `{"package_id":1,"date":"2026-03-14","start_time":"10:00","num_people":2,"extra":true}`,
			message: msgInvalidRequestBody,
		},
		{
			name:    "bad date",
			body:    `{"package_id":1,"date":"14/03/2026","start_time":"10:00","num_people":2}`,
			message: msgInvalidDateOrTime,
		},
		{
			name:    "bad time",
			body:    `{"package_id":1,"date":"2026-03-14","start_time":"10am","num_people":2}`,
			message: msgInvalidDateOrTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{}, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}

func TestHandleUseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		message    string
	}{
		{
			name:       "package not found",
			err:        checkAvailability.ErrPackageNotFound,
			wantStatus: http.StatusNotFound,
			message:    msgPackageNotFound,
		},
		{
			name:       "package inactive",
			err:        checkAvailability.ErrPackageInactive,
			wantStatus: http.StatusBadRequest,
			message:    msgPackageInactive,
		},
		{
			name:       "invalid input",
			err:        checkAvailability.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
			message:    "invalid input",
		},
		{
			name:       "internal error",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			message:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, `{"package_id":1,"date":"2026-03-14","start_time":"10:00","num_people":2}`)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}
