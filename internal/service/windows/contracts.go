package windows

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/appointment-scheduler/internal/domain"
)

// WindowRepository интерфейс репозитория окон недоступности
type WindowRepository interface {
	Create(ctx context.Context, window *domain.UnavailableWindow) (*domain.UnavailableWindow, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UnavailableWindow, error)
	GetByScope(ctx context.Context, scope domain.WindowScope) ([]*domain.UnavailableWindow, error)
	List(ctx context.Context) ([]*domain.UnavailableWindow, error)
	Update(ctx context.Context, id uuid.UUID, window *domain.UnavailableWindow) (*domain.UnavailableWindow, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
