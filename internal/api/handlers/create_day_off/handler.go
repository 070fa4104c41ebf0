package create_day_off

import (
	"errors"
	"net/http"

	"github.com/m04kA/appointment-scheduler/internal/api/handlers"
	"github.com/m04kA/appointment-scheduler/internal/service/daysoff"
	"github.com/m04kA/appointment-scheduler/internal/service/daysoff/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные дата или примечание"
	msgDuplicateDate      = "выходной на эту дату уже существует"
)

type Handler struct {
	service DayOffService
	logger  Logger
}

func NewHandler(service DayOffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/days-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDayOffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/days-off - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, daysoff.ErrInvalidInput):
			h.logger.Warn("POST /admin/days-off - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, daysoff.ErrDuplicateDate):
			h.logger.Warn("POST /admin/days-off - Duplicate date: date=%s", req.Date)
			handlers.RespondConflict(w, msgDuplicateDate)

		default:
			h.logger.Error("POST /admin/days-off - Failed to create day off: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/days-off - Day off created successfully: day_off_id=%s, date=%s", result.ID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
