package create_window

import (
	"errors"
	"net/http"

	"github.com/m04kA/appointment-scheduler/internal/api/handlers"
	"github.com/m04kA/appointment-scheduler/internal/service/windows"
	"github.com/m04kA/appointment-scheduler/internal/service/windows/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные область действия, времена или примечание"
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

// Handle POST /api/v1/admin/unavailable-windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/unavailable-windows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, windows.ErrInvalidInput):
			h.logger.Warn("POST /admin/unavailable-windows - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, windows.ErrWindowOverlap):
			h.logger.Warn("POST /admin/unavailable-windows - Window overlap: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgWindowOverlap)

		default:
			h.logger.Error("POST /admin/unavailable-windows - Failed to create window: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/unavailable-windows - Window created successfully: window_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
