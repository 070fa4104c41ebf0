package get_availability

import (
	"context"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// ConfigProvider интерфейс провайдера конфигурации расписания
type ConfigProvider interface {
	// GetDomain получает текущую конфигурацию, лениво создавая её из значений по умолчанию
	GetDomain(ctx context.Context) (*domain.ScheduleConfig, error)
}

// DayOffRepository интерфейс репозитория выходных дней
type DayOffRepository interface {
	GetByDate(ctx context.Context, date types.DateString) (*domain.DayOff, error)
}

// WindowRepository интерфейс репозитория окон недоступности
type WindowRepository interface {
	// GetForDate получает разовые окна на дату и повторяющиеся окна на её день недели
	GetForDate(ctx context.Context, date types.DateString, weekday int) ([]*domain.UnavailableWindow, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByDate(ctx context.Context, date types.DateString) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
