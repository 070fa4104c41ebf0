package update_window

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/appointment-scheduler/internal/service/windows/models"
)

type WindowService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateWindowRequest) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
