package daysoff

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	dayoffRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/dayoff"
	"github.com/m04kA/appointment-scheduler/internal/service/daysoff/models"
	"github.com/m04kA/appointment-scheduler/pkg/ptr"
)

// fakeDayOffRepo in-memory реализация DayOffRepository
type fakeDayOffRepo struct {
	daysOff map[uuid.UUID]*domain.DayOff
}

func newFakeDayOffRepo() *fakeDayOffRepo {
	return &fakeDayOffRepo{daysOff: make(map[uuid.UUID]*domain.DayOff)}
}

func (f *fakeDayOffRepo) Create(_ context.Context, dayOff *domain.DayOff) (*domain.DayOff, error) {
	for _, d := range f.daysOff {
		if d.Date == dayOff.Date {
			return nil, dayoffRepo.ErrDuplicateDate
		}
	}

	created := *dayOff
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.daysOff[created.ID] = &created
	copied := created
	return &copied, nil
}

func (f *fakeDayOffRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.DayOff, error) {
	d, ok := f.daysOff[id]
	if !ok {
		return nil, dayoffRepo.ErrDayOffNotFound
	}
	copied := *d
	return &copied, nil
}

func (f *fakeDayOffRepo) List(_ context.Context) ([]*domain.DayOff, error) {
	result := make([]*domain.DayOff, 0, len(f.daysOff))
	for _, d := range f.daysOff {
		result = append(result, d)
	}
	return result, nil
}

func (f *fakeDayOffRepo) UpdateNote(_ context.Context, id uuid.UUID, note *string) error {
	d, ok := f.daysOff[id]
	if !ok {
		return dayoffRepo.ErrDayOffNotFound
	}
	d.Note = note
	return nil
}

func (f *fakeDayOffRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.daysOff[id]; !ok {
		return dayoffRepo.ErrDayOffNotFound
	}
	delete(f.daysOff, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCreate(t *testing.T) {
	svc := NewService(newFakeDayOffRepo(), nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateDayOffRequest{
		Date: "2026-05-01",
		Note: ptr.Ptr("праздничный день"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-05-01", resp.Date)
	require.NotNil(t, resp.Note)
	assert.Equal(t, "праздничный день", *resp.Note)
}

func TestCreate_InvalidDate(t *testing.T) {
	svc := NewService(newFakeDayOffRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateDayOffRequest{Date: "01.05.2026"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_NoteTooLong(t *testing.T) {
	svc := NewService(newFakeDayOffRepo(), nopLogger{})

	note := strings.Repeat("a", domain.MaxNoteLength+1)
	_, err := svc.Create(context.Background(), &models.CreateDayOffRequest{
		Date: "2026-05-01",
		Note: &note,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DuplicateDate(t *testing.T) {
	svc := NewService(newFakeDayOffRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateDayOffRequest{Date: "2026-05-01"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &models.CreateDayOffRequest{Date: "2026-05-01"})
	assert.ErrorIs(t, err, ErrDuplicateDate)
}

func TestUpdateNote(t *testing.T) {
	svc := NewService(newFakeDayOffRepo(), nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateDayOffRequest{
		Date: "2026-05-01",
		Note: ptr.Ptr("старое примечание"),
	})
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	resp, err := svc.UpdateNote(context.Background(), id, &models.UpdateDayOffRequest{
		Note: ptr.Ptr("новое примечание"),
	})
	require.NoError(t, err)

	// Дата неизменяема, примечание обновлено
	assert.Equal(t, "2026-05-01", resp.Date)
	require.NotNil(t, resp.Note)
	assert.Equal(t, "новое примечание", *resp.Note)
}

func TestUpdateNote_NotFound(t *testing.T) {
	svc := NewService(newFakeDayOffRepo(), nopLogger{})

	_, err := svc.UpdateNote(context.Background(), uuid.New(), &models.UpdateDayOffRequest{
		Note: ptr.Ptr("примечание"),
	})
	assert.ErrorIs(t, err, ErrDayOffNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewService(newFakeDayOffRepo(), nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateDayOffRequest{Date: "2026-05-01"})
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.ErrorIs(t, svc.Delete(context.Background(), id), ErrDayOffNotFound)
}
