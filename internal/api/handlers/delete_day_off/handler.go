package delete_day_off

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/appointment-scheduler/internal/api/handlers"
	"github.com/m04kA/appointment-scheduler/internal/service/daysoff"
)

const (
	msgInvalidDayOffID = "некорректный ID выходного"
	msgNotFound        = "выходной не найден"
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

// Handle DELETE /api/v1/admin/days-off/{dayOffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dayOffID, err := uuid.Parse(vars["dayOffId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/days-off/{id} - Invalid day off ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOffID)
		return
	}

	if err := h.service.Delete(r.Context(), dayOffID); err != nil {
		switch {
		case errors.Is(err, daysoff.ErrDayOffNotFound):
			h.logger.Warn("DELETE /admin/days-off/{id} - Day off not found: day_off_id=%s", dayOffID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/days-off/{id} - Failed to delete day off: day_off_id=%s, error=%v",
				dayOffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/days-off/{id} - Day off deleted successfully: day_off_id=%s", dayOffID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
