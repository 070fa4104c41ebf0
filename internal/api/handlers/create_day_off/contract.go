package create_day_off

import (
	"context"

	"github.com/m04kA/appointment-scheduler/internal/service/daysoff/models"
)

type DayOffService interface {
	Create(ctx context.Context, req *models.CreateDayOffRequest) (*models.DayOffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
