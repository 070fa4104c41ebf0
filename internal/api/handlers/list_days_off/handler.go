package list_days_off

import (
	"net/http"

	"github.com/m04kA/appointment-scheduler/internal/api/handlers"
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

// Handle GET /api/v1/admin/days-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/days-off - Failed to list days off: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/days-off - Returned %d days off", len(result.DaysOff))
	handlers.RespondJSON(w, http.StatusOK, result)
}
