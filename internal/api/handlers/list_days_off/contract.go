package list_days_off

import (
	"context"

	"github.com/m04kA/appointment-scheduler/internal/service/daysoff/models"
)

type DayOffService interface {
	List(ctx context.Context) (*models.DayOffListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
