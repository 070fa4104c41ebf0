package list_windows

import (
	"context"

	"github.com/m04kA/appointment-scheduler/internal/service/windows/models"
)

type WindowService interface {
	List(ctx context.Context) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
