package delete_window

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/appointment-scheduler/internal/api/handlers"
	"github.com/m04kA/appointment-scheduler/internal/service/windows"
)

const (
	msgInvalidWindowID = "некорректный ID окна"
	msgNotFound        = "окно недоступности не найдено"
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

// Handle DELETE /api/v1/admin/unavailable-windows/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	windowID, err := uuid.Parse(vars["windowId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/unavailable-windows/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	if err := h.service.Delete(r.Context(), windowID); err != nil {
		switch {
		case errors.Is(err, windows.ErrWindowNotFound):
			h.logger.Warn("DELETE /admin/unavailable-windows/{id} - Window not found: window_id=%s", windowID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/unavailable-windows/{id} - Failed to delete window: window_id=%s, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/unavailable-windows/{id} - Window deleted successfully: window_id=%s", windowID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
