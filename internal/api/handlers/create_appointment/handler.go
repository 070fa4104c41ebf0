package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/appointment-scheduler/internal/api/handlers"
	createAppointment "github.com/m04kA/appointment-scheduler/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные дата, время или данные клиента"
	msgInvalidSlotCount   = "некорректное количество слотов"
	msgMisalignedTime     = "время не попадает на границу сетки слотов"
	msgNonOperationalDay  = "выбранный день нерабочий"
	msgOutsideHours       = "интервал выходит за пределы рабочих часов"
	msgDateIsDayOff       = "на выбранную дату назначен выходной"
	msgWindowConflict     = "интервал пересекается с окном недоступности"
	msgSlotConflict       = "выбранный интервал уже занят"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrInvalidSlotCount):
			h.logger.Warn("POST /appointments - Invalid slot count: date=%s, slots=%d", req.Date, req.Slots)
			handlers.RespondBadRequest(w, msgInvalidSlotCount)

		case errors.Is(err, createAppointment.ErrMisalignedTime):
			h.logger.Warn("POST /appointments - Misaligned time: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgMisalignedTime)

		case errors.Is(err, createAppointment.ErrNonOperationalDay):
			h.logger.Warn("POST /appointments - Non-operational day: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgNonOperationalDay)

		case errors.Is(err, createAppointment.ErrOutsideOperationalHours):
			h.logger.Warn("POST /appointments - Outside operational hours: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createAppointment.ErrDateIsDayOff):
			h.logger.Warn("POST /appointments - Date is a day off: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateIsDayOff)

		case errors.Is(err, createAppointment.ErrWindowConflict):
			h.logger.Warn("POST /appointments - Window conflict: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgWindowConflict)

		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotConflict)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
