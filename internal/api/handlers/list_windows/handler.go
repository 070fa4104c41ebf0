package list_windows

import (
	"net/http"

	"github.com/m04kA/appointment-scheduler/internal/api/handlers"
)

type Handler struct {
	service WindowService
	logger  Logger
}

func NewHandler(service WindowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/unavailable-windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/unavailable-windows - Failed to list windows: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/unavailable-windows - Returned %d windows", len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
