package create_appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	appointmentRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/appointment"
	dayoffRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/dayoff"
	"github.com/m04kA/appointment-scheduler/pkg/txmanager"
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

type fakeConfigProvider struct {
	config *domain.ScheduleConfig
}

func (f *fakeConfigProvider) GetDomain(_ context.Context) (*domain.ScheduleConfig, error) {
	return f.config, nil
}

type fakeDayOffRepo struct {
	daysOff map[types.DateString]*domain.DayOff
}

func (f *fakeDayOffRepo) GetByDate(_ context.Context, date types.DateString) (*domain.DayOff, error) {
	if d, ok := f.daysOff[date]; ok {
		return d, nil
	}
	return nil, dayoffRepo.ErrDayOffNotFound
}

type fakeWindowRepo struct {
	windows []*domain.UnavailableWindow
}

func (f *fakeWindowRepo) GetForDate(_ context.Context, date types.DateString, weekday int) ([]*domain.UnavailableWindow, error) {
	result := make([]*domain.UnavailableWindow, 0)
	for _, w := range f.windows {
		if w.Scope.AppliesTo(date, weekday) {
			result = append(result, w)
		}
	}
	return result, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	createErr    error
	getByDateErr error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *appointment
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.appointments = append(f.appointments, &created)
	return &created, nil
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, date types.DateString) ([]*domain.Appointment, error) {
	if f.getByDateErr != nil {
		return nil, f.getByDateErr
	}

	result := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if a.Date == date {
			result = append(result, a)
		}
	}
	return result, nil
}

// fakeTxManager выполняет функцию без транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// errTxManager возвращает фиксированную ошибку, не вызывая функцию
type errTxManager struct {
	err error
}

func (m errTxManager) DoSerializable(_ context.Context, _ func(ctx context.Context) error) error {
	return m.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Пн-Пт 09:00-12:00, слот 30 минут, не более 3 слотов на запись
func testConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		ID:                     1,
		SlotDurationMinutes:    30,
		MaxSlotsPerAppointment: 3,
		OperationalDays:        []int{1, 2, 3, 4, 5},
		OperationalStartTime:   "09:00",
		OperationalEndTime:     "12:00",
	}
}

func newTestUseCase(config *domain.ScheduleConfig, daysOff *fakeDayOffRepo, windows *fakeWindowRepo, appointments *fakeAppointmentRepo) *UseCase {
	if daysOff == nil {
		daysOff = &fakeDayOffRepo{daysOff: map[types.DateString]*domain.DayOff{}}
	}
	if windows == nil {
		windows = &fakeWindowRepo{}
	}
	if appointments == nil {
		appointments = &fakeAppointmentRepo{}
	}
	return NewUseCase(&fakeConfigProvider{config: config}, daysOff, windows, appointments, fakeTxManager{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(testConfig(), nil, nil, repo)

	name := "Иван Петров"
	email := "ivan@example.com"

	resp, err := uc.Execute(context.Background(), &Request{
		Date:          "2026-03-16",
		StartTime:     "10:00",
		SlotCount:     2,
		CustomerName:  &name,
		CustomerEmail: &email,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, types.DateString("2026-03-16"), resp.Date)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, 2, resp.SlotCount)
	assert.Equal(t, 30, resp.SlotDurationMinutes)

	// Запись сохранена с фиксацией текущей длительности слота
	require.Len(t, repo.appointments, 1)
	assert.Equal(t, 30, repo.appointments[0].SlotDurationMinutes)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(testConfig(), nil, nil, nil)

	badEmail := "not-an-email"

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "invalid date",
			req:  &Request{Date: "16.03.2026", StartTime: "10:00", SlotCount: 1},
		},
		{
			name: "invalid time",
			req:  &Request{Date: "2026-03-16", StartTime: "10:00:00", SlotCount: 1},
		},
		{
			name: "invalid email",
			req:  &Request{Date: "2026-03-16", StartTime: "10:00", SlotCount: 1, CustomerEmail: &badEmail},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_InvalidSlotCount(t *testing.T) {
	uc := newTestUseCase(testConfig(), nil, nil, nil)

	for _, slotCount := range []int{0, -1, 4} {
		_, err := uc.Execute(context.Background(), &Request{
			Date:      "2026-03-16",
			StartTime: "10:00",
			SlotCount: slotCount,
		})
		assert.ErrorIs(t, err, ErrInvalidSlotCount, "slotCount=%d", slotCount)
	}
}

// Выравнивание считается от начала рабочего дня, а не от полуночи
func TestExecute_MisalignedTime(t *testing.T) {
	config := testConfig()
	config.OperationalStartTime = "09:15"
	config.OperationalEndTime = "12:15"
	uc := newTestUseCase(config, nil, nil, nil)

	// 10:00 не попадает на сетку 09:15, 09:45, 10:15 ...
	_, err := uc.Execute(context.Background(), &Request{
		Date:      "2026-03-16",
		StartTime: "10:00",
		SlotCount: 1,
	})
	assert.ErrorIs(t, err, ErrMisalignedTime)

	// 10:15 попадает
	_, err = uc.Execute(context.Background(), &Request{
		Date:      "2026-03-16",
		StartTime: "10:15",
		SlotCount: 1,
	})
	assert.NoError(t, err)
}

func TestExecute_NonOperationalDay(t *testing.T) {
	uc := newTestUseCase(testConfig(), nil, nil, nil)

	// 2026-03-21 - суббота
	_, err := uc.Execute(context.Background(), &Request{
		Date:      "2026-03-21",
		StartTime: "10:00",
		SlotCount: 1,
	})
	assert.ErrorIs(t, err, ErrNonOperationalDay)
}

func TestExecute_OutsideOperationalHours(t *testing.T) {
	uc := newTestUseCase(testConfig(), nil, nil, nil)

	// Интервал 11:30-12:30 выходит за конец рабочего дня
	_, err := uc.Execute(context.Background(), &Request{
		Date:      "2026-03-16",
		StartTime: "11:30",
		SlotCount: 2,
	})
	assert.ErrorIs(t, err, ErrOutsideOperationalHours)

	// Начало до открытия
	_, err = uc.Execute(context.Background(), &Request{
		Date:      "2026-03-16",
		StartTime: "08:30",
		SlotCount: 1,
	})
	assert.ErrorIs(t, err, ErrOutsideOperationalHours)
}

func TestExecute_DateIsDayOff(t *testing.T) {
	daysOff := &fakeDayOffRepo{daysOff: map[types.DateString]*domain.DayOff{
		"2026-03-16": {ID: uuid.New(), Date: "2026-03-16"},
	}}
	uc := newTestUseCase(testConfig(), daysOff, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      "2026-03-16",
		StartTime: "10:00",
		SlotCount: 1,
	})
	assert.ErrorIs(t, err, ErrDateIsDayOff)
}

func TestExecute_WindowConflict(t *testing.T) {
	scope, err := domain.NewRecurringScope(1)
	require.NoError(t, err)

	windows := &fakeWindowRepo{windows: []*domain.UnavailableWindow{
		{ID: uuid.New(), Scope: scope, StartTime: "10:00", EndTime: "11:00"},
	}}
	uc := newTestUseCase(testConfig(), nil, windows, nil)

	// Интервал 09:30-10:30 задевает окно
	_, err = uc.Execute(context.Background(), &Request{
		Date:      "2026-03-16",
		StartTime: "09:30",
		SlotCount: 2,
	})
	assert.ErrorIs(t, err, ErrWindowConflict)

	// Интервал 09:30-10:00 лишь соприкасается с окном - конфликта нет
	_, err = uc.Execute(context.Background(), &Request{
		Date:      "2026-03-16",
		StartTime: "09:30",
		SlotCount: 1,
	})
	assert.NoError(t, err)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: uuid.New(), Date: "2026-03-16", StartTime: "10:00", SlotCount: 1, SlotDurationMinutes: 30},
	}}
	uc := newTestUseCase(testConfig(), nil, nil, repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      "2026-03-16",
		StartTime: "10:00",
		SlotCount: 1,
	})
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Запись на другую дату не мешает
	_, err = uc.Execute(context.Background(), &Request{
		Date:      "2026-03-17",
		StartTime: "10:00",
		SlotCount: 1,
	})
	assert.NoError(t, err)
}

// Конфликт считается по сохраненной длительности слота существующей записи:
// час, занятый записью эпохи 60-минутных слотов, остается занятым
func TestExecute_ConflictUsesStoredDuration(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: uuid.New(), Date: "2026-03-16", StartTime: "09:00", SlotCount: 1, SlotDurationMinutes: 60},
	}}
	uc := newTestUseCase(testConfig(), nil, nil, repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      "2026-03-16",
		StartTime: "09:30",
		SlotCount: 1,
	})
	assert.ErrorIs(t, err, ErrSlotConflict)

	_, err = uc.Execute(context.Background(), &Request{
		Date:      "2026-03-16",
		StartTime: "10:00",
		SlotCount: 1,
	})
	assert.NoError(t, err)
}

// Конфликт сериализации (SQLSTATE 40001) может возникнуть на любом операторе
// транзакции, не только на commit. Обернутая репозиторием и usecase ошибка
// должна сохранять цепочку и превращаться в ErrSlotConflict, а не в 500
func TestExecute_SerializationFailureMapsToSlotConflict(t *testing.T) {
	t.Run("statement-time failure inside transaction", func(t *testing.T) {
		repo := &fakeAppointmentRepo{
			getByDateErr: fmt.Errorf("%w: GetByDate - execute query: %w",
				appointmentRepo.ErrExecQuery, &pq.Error{Code: "40001"}),
		}
		uc := newTestUseCase(testConfig(), nil, nil, repo)

		_, err := uc.Execute(context.Background(), &Request{
			Date:      "2026-03-16",
			StartTime: "10:00",
			SlotCount: 1,
		})
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("retries exhausted", func(t *testing.T) {
		exhausted := fmt.Errorf("%w: %w", txmanager.ErrSerializationFailure, &pq.Error{Code: "40001"})
		uc := NewUseCase(
			&fakeConfigProvider{config: testConfig()},
			&fakeDayOffRepo{daysOff: map[types.DateString]*domain.DayOff{}},
			&fakeWindowRepo{},
			&fakeAppointmentRepo{},
			errTxManager{err: exhausted},
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{
			Date:      "2026-03-16",
			StartTime: "10:00",
			SlotCount: 1,
		})
		assert.ErrorIs(t, err, ErrSlotConflict)
	})
}

// Уникальный индекс в БД - последний рубеж против гонки двух запросов
func TestExecute_UniqueViolationMapsToSlotConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken}
	uc := newTestUseCase(testConfig(), nil, nil, repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      "2026-03-16",
		StartTime: "10:00",
		SlotCount: 1,
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
}
