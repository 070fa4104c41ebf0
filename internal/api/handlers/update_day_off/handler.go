package update_day_off

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/appointment-scheduler/internal/api/handlers"
	"github.com/m04kA/appointment-scheduler/internal/service/daysoff"
	"github.com/m04kA/appointment-scheduler/internal/service/daysoff/models"
)

const (
	msgInvalidDayOffID    = "некорректный ID выходного"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректное примечание"
	msgNotFound           = "выходной не найден"
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

// Handle PUT /api/v1/admin/days-off/{dayOffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dayOffID, err := uuid.Parse(vars["dayOffId"])
	if err != nil {
		h.logger.Warn("PUT /admin/days-off/{id} - Invalid day off ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOffID)
		return
	}

	var req models.UpdateDayOffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/days-off/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateNote(r.Context(), dayOffID, &req)
	if err != nil {
		switch {
		case errors.Is(err, daysoff.ErrInvalidInput):
			h.logger.Warn("PUT /admin/days-off/{id} - Invalid input: day_off_id=%s, error=%v", dayOffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, daysoff.ErrDayOffNotFound):
			h.logger.Warn("PUT /admin/days-off/{id} - Day off not found: day_off_id=%s", dayOffID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /admin/days-off/{id} - Failed to update day off: day_off_id=%s, error=%v",
				dayOffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/days-off/{id} - Day off updated successfully: day_off_id=%s", dayOffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
