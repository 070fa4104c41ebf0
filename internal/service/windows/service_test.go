package windows

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	windowRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/window"
	"github.com/m04kA/appointment-scheduler/internal/service/windows/models"
	"github.com/m04kA/appointment-scheduler/pkg/ptr"
)

// fakeWindowRepo in-memory реализация WindowRepository
type fakeWindowRepo struct {
	windows map[uuid.UUID]*domain.UnavailableWindow
}

func newFakeWindowRepo() *fakeWindowRepo {
	return &fakeWindowRepo{windows: make(map[uuid.UUID]*domain.UnavailableWindow)}
}

func (f *fakeWindowRepo) Create(_ context.Context, window *domain.UnavailableWindow) (*domain.UnavailableWindow, error) {
	created := *window
	created.ID = uuid.New()
	f.windows[created.ID] = &created
	return &created, nil
}

func (f *fakeWindowRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.UnavailableWindow, error) {
	w, ok := f.windows[id]
	if !ok {
		return nil, windowRepo.ErrWindowNotFound
	}
	copied := *w
	return &copied, nil
}

func (f *fakeWindowRepo) GetByScope(_ context.Context, scope domain.WindowScope) ([]*domain.UnavailableWindow, error) {
	result := make([]*domain.UnavailableWindow, 0)
	for _, w := range f.windows {
		if w.Scope.Equal(scope) {
			result = append(result, w)
		}
	}
	return result, nil
}

func (f *fakeWindowRepo) List(_ context.Context) ([]*domain.UnavailableWindow, error) {
	result := make([]*domain.UnavailableWindow, 0, len(f.windows))
	for _, w := range f.windows {
		result = append(result, w)
	}
	return result, nil
}

func (f *fakeWindowRepo) Update(_ context.Context, id uuid.UUID, window *domain.UnavailableWindow) (*domain.UnavailableWindow, error) {
	if _, ok := f.windows[id]; !ok {
		return nil, windowRepo.ErrWindowNotFound
	}
	updated := *window
	updated.ID = id
	f.windows[id] = &updated
	return &updated, nil
}

func (f *fakeWindowRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.windows[id]; !ok {
		return windowRepo.ErrWindowNotFound
	}
	delete(f.windows, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCreate_Recurring(t *testing.T) {
	svc := NewService(newFakeWindowRepo(), nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateWindowRequest{
		Weekday:   ptr.Ptr(1),
		StartTime: "13:00",
		EndTime:   "14:00",
		Note:      ptr.Ptr("обед"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Weekday)
	assert.Equal(t, 1, *resp.Weekday)
	assert.Nil(t, resp.Date)
	assert.Equal(t, "13:00", resp.StartTime)
	assert.Equal(t, "14:00", resp.EndTime)
}

func TestCreate_OneOff(t *testing.T) {
	svc := NewService(newFakeWindowRepo(), nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateWindowRequest{
		Date:      ptr.Ptr("2026-03-16"),
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Date)
	assert.Equal(t, "2026-03-16", *resp.Date)
	assert.Nil(t, resp.Weekday)
}

func TestCreate_InvalidScope(t *testing.T) {
	svc := NewService(newFakeWindowRepo(), nopLogger{})

	tests := []struct {
		name string
		req  *models.CreateWindowRequest
	}{
		{
			name: "both weekday and date",
			req: &models.CreateWindowRequest{
				Weekday: ptr.Ptr(1), Date: ptr.Ptr("2026-03-16"),
				StartTime: "10:00", EndTime: "11:00",
			},
		},
		{
			name: "neither weekday nor date",
			req:  &models.CreateWindowRequest{StartTime: "10:00", EndTime: "11:00"},
		},
		{
			name: "weekday out of range",
			req:  &models.CreateWindowRequest{Weekday: ptr.Ptr(8), StartTime: "10:00", EndTime: "11:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_InvalidTimes(t *testing.T) {
	svc := NewService(newFakeWindowRepo(), nopLogger{})

	// start >= end
	_, err := svc.Create(context.Background(), &models.CreateWindowRequest{
		Weekday: ptr.Ptr(1), StartTime: "14:00", EndTime: "14:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_NoteTooLong(t *testing.T) {
	svc := NewService(newFakeWindowRepo(), nopLogger{})

	note := strings.Repeat("a", domain.MaxNoteLength+1)
	_, err := svc.Create(context.Background(), &models.CreateWindowRequest{
		Weekday: ptr.Ptr(1), StartTime: "10:00", EndTime: "11:00", Note: &note,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_OverlapWithinScope(t *testing.T) {
	svc := NewService(newFakeWindowRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateWindowRequest{
		Weekday: ptr.Ptr(1), StartTime: "13:00", EndTime: "14:00",
	})
	require.NoError(t, err)

	// Пересечение в той же области действия
	_, err = svc.Create(context.Background(), &models.CreateWindowRequest{
		Weekday: ptr.Ptr(1), StartTime: "13:30", EndTime: "15:00",
	})
	assert.ErrorIs(t, err, ErrWindowOverlap)

	// Соприкосновение границами пересечением не считается
	_, err = svc.Create(context.Background(), &models.CreateWindowRequest{
		Weekday: ptr.Ptr(1), StartTime: "14:00", EndTime: "15:00",
	})
	assert.NoError(t, err)

	// Другая область действия не конфликтует
	_, err = svc.Create(context.Background(), &models.CreateWindowRequest{
		Weekday: ptr.Ptr(2), StartTime: "13:00", EndTime: "14:00",
	})
	assert.NoError(t, err)

	// Разовое окно не конфликтует с повторяющимся даже на тот же интервал
	_, err = svc.Create(context.Background(), &models.CreateWindowRequest{
		Date: ptr.Ptr("2026-03-16"), StartTime: "13:00", EndTime: "14:00",
	})
	assert.NoError(t, err)
}

func TestUpdate_PartialAndOverlapExcludesSelf(t *testing.T) {
	repo := newFakeWindowRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateWindowRequest{
		Weekday: ptr.Ptr(1), StartTime: "13:00", EndTime: "14:00",
	})
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	// Сдвиг собственных границ не считается пересечением с самим собой
	resp, err := svc.Update(context.Background(), id, &models.UpdateWindowRequest{
		EndTime: ptr.Ptr("14:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "13:00", resp.StartTime)
	assert.Equal(t, "14:30", resp.EndTime)
}

func TestUpdate_OverlapWithOtherWindow(t *testing.T) {
	svc := NewService(newFakeWindowRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateWindowRequest{
		Weekday: ptr.Ptr(1), StartTime: "13:00", EndTime: "14:00",
	})
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), &models.CreateWindowRequest{
		Weekday: ptr.Ptr(1), StartTime: "15:00", EndTime: "16:00",
	})
	require.NoError(t, err)

	id, err := uuid.Parse(second.ID)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), id, &models.UpdateWindowRequest{
		StartTime: ptr.Ptr("13:30"),
	})
	assert.ErrorIs(t, err, ErrWindowOverlap)
}

func TestUpdate_SwitchScope(t *testing.T) {
	svc := NewService(newFakeWindowRepo(), nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateWindowRequest{
		Weekday: ptr.Ptr(1), StartTime: "13:00", EndTime: "14:00",
	})
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), id, &models.UpdateWindowRequest{
		Date: ptr.Ptr("2026-03-16"),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Weekday)
	require.NotNil(t, resp.Date)
	assert.Equal(t, "2026-03-16", *resp.Date)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newFakeWindowRepo(), nopLogger{})

	_, err := svc.Update(context.Background(), uuid.New(), &models.UpdateWindowRequest{
		StartTime: ptr.Ptr("10:00"),
	})
	assert.ErrorIs(t, err, ErrWindowNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewService(newFakeWindowRepo(), nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateWindowRequest{
		Weekday: ptr.Ptr(3), StartTime: "10:00", EndTime: "11:00",
	})
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.ErrorIs(t, svc.Delete(context.Background(), id), ErrWindowNotFound)
}
