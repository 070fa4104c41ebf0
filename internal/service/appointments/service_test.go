package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	appointmentRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/appointment"
	"github.com/m04kA/appointment-scheduler/internal/service/appointments/models"
	"github.com/m04kA/appointment-scheduler/pkg/ptr"
)

// fakeAppointmentRepo in-memory реализация AppointmentRepository
type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*domain.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*domain.Appointment)}
}

func (f *fakeAppointmentRepo) add(a *domain.Appointment) *domain.Appointment {
	stored := *a
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	f.appointments[stored.ID] = &stored
	return &stored
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		if filter.Date != nil && a.Date != *filter.Date {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(f.appointments, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetByID(t *testing.T) {
	repo := newFakeAppointmentRepo()
	stored := repo.add(&domain.Appointment{
		Date:                "2026-03-16",
		StartTime:           "10:00",
		SlotCount:           2,
		SlotDurationMinutes: 30,
	})
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)

	assert.Equal(t, stored.ID.String(), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
	// Время окончания вычисляется из сохраненной длительности слота
	assert.Equal(t, "11:00", resp.EndTime)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_FilterByDate(t *testing.T) {
	repo := newFakeAppointmentRepo()
	repo.add(&domain.Appointment{Date: "2026-03-16", StartTime: "10:00", SlotCount: 1, SlotDurationMinutes: 30})
	repo.add(&domain.Appointment{Date: "2026-03-17", StartTime: "11:00", SlotCount: 1, SlotDurationMinutes: 30})
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{Date: ptr.Ptr("2026-03-16")})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "2026-03-16", resp.Appointments[0].Date)

	resp, err = svc.List(context.Background(), &models.ListAppointmentsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
}

func TestList_InvalidDate(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), nopLogger{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{Date: ptr.Ptr("16.03.2026")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := newFakeAppointmentRepo()
	stored := repo.add(&domain.Appointment{
		Date:                "2026-03-16",
		StartTime:           "10:00",
		SlotCount:           1,
		SlotDurationMinutes: 30,
	})
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), stored.ID))

	// Повторная отмена
	assert.ErrorIs(t, svc.Cancel(context.Background(), stored.ID), ErrAppointmentNotFound)
}
