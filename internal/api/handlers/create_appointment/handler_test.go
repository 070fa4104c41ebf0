package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/appointment-scheduler/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createAppointment.Request) (*createAppointment.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc CreateAppointmentUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

const validBody = `{"date":"2026-03-16","time":"10:00","slots":2}`

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:                  uuid.New(),
		Date:                "2026-03-16",
		StartTime:           "10:00",
		EndTime:             "11:00",
		SlotCount:           2,
		SlotDurationMinutes: 30,
		CreatedAt:           time.Now(),
	}}

	rec := doRequest(t, uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-16", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, 2, resp.SlotCount)
	assert.Equal(t, 30, resp.SlotDurationMinutes)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"date":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"invalid slot count", createAppointment.ErrInvalidSlotCount, http.StatusBadRequest},
		{"misaligned time", createAppointment.ErrMisalignedTime, http.StatusBadRequest},
		{"non-operational day", createAppointment.ErrNonOperationalDay, http.StatusBadRequest},
		{"outside operational hours", createAppointment.ErrOutsideOperationalHours, http.StatusBadRequest},
		{"date is a day off", createAppointment.ErrDateIsDayOff, http.StatusBadRequest},
		{"window conflict", createAppointment.ErrWindowConflict, http.StatusConflict},
		{"slot conflict", createAppointment.ErrSlotConflict, http.StatusConflict},
		{"internal error", createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
