package create_appointment

import (
	"context"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// ConfigProvider интерфейс провайдера конфигурации расписания
type ConfigProvider interface {
	GetDomain(ctx context.Context) (*domain.ScheduleConfig, error)
}

// DayOffRepository интерфейс репозитория выходных дней
type DayOffRepository interface {
	GetByDate(ctx context.Context, date types.DateString) (*domain.DayOff, error)
}

// WindowRepository интерфейс репозитория окон недоступности
type WindowRepository interface {
	GetForDate(ctx context.Context, date types.DateString, weekday int) ([]*domain.UnavailableWindow, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	// GetByDate внутри транзакции блокирует прочитанные строки (FOR UPDATE)
	GetByDate(ctx context.Context, date types.DateString) ([]*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
