package update_window

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/appointment-scheduler/internal/api/handlers"
	"github.com/m04kA/appointment-scheduler/internal/service/windows"
	"github.com/m04kA/appointment-scheduler/internal/service/windows/models"
)

const (
	msgInvalidWindowID    = "некорректный ID окна"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные область действия, времена или примечание"
	msgNotFound           = "окно недоступности не найдено"
	msgWindowOverlap      = "окно пересекается с существующим окном той же области действия"
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

// Handle PUT /api/v1/admin/unavailable-windows/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	windowID, err := uuid.Parse(vars["windowId"])
	if err != nil {
		h.logger.Warn("PUT /admin/unavailable-windows/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	var req models.UpdateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/unavailable-windows/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), windowID, &req)
	if err != nil {
		switch {
		case errors.Is(err, windows.ErrInvalidInput):
			h.logger.Warn("PUT /admin/unavailable-windows/{id} - Invalid input: window_id=%s, error=%v", windowID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, windows.ErrWindowNotFound):
			h.logger.Warn("PUT /admin/unavailable-windows/{id} - Window not found: window_id=%s", windowID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, windows.ErrWindowOverlap):
			h.logger.Warn("PUT /admin/unavailable-windows/{id} - Window overlap: window_id=%s", windowID)
			handlers.RespondConflict(w, msgWindowOverlap)

		default:
			h.logger.Error("PUT /admin/unavailable-windows/{id} - Failed to update window: window_id=%s, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/unavailable-windows/{id} - Window updated successfully: window_id=%s", windowID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
