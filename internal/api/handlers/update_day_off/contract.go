package update_day_off

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/appointment-scheduler/internal/service/daysoff/models"
)

type DayOffService interface {
	UpdateNote(ctx context.Context, id uuid.UUID, req *models.UpdateDayOffRequest) (*models.DayOffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
