package daysoff

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/appointment-scheduler/internal/domain"
)

// DayOffRepository интерфейс репозитория выходных дней
type DayOffRepository interface {
	Create(ctx context.Context, dayOff *domain.DayOff) (*domain.DayOff, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DayOff, error)
	List(ctx context.Context) ([]*domain.DayOff, error)
	UpdateNote(ctx context.Context, id uuid.UUID, note *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
