package create_appointment

import (
	"fmt"
	"net/mail"

	"github.com/m04kA/appointment-scheduler/internal/domain"
	"github.com/m04kA/appointment-scheduler/pkg/timegrid"
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// parsedRequest результат разбора и базовой валидации запроса
type parsedRequest struct {
	date      types.DateString
	startTime types.TimeString
	weekday   int
}

// parseRequest разбирает форматы даты и времени и проверяет опциональные поля
func parseRequest(req *Request) (*parsedRequest, error) {
	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	weekday, err := date.Weekday()
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}

	if req.CustomerEmail != nil {
		if _, err := mail.ParseAddress(*req.CustomerEmail); err != nil {
			return nil, fmt.Errorf("%w: customerEmail: %v", ErrInvalidInput, err)
		}
	}

	if req.CustomerName != nil && len(*req.CustomerName) > domain.MaxNoteLength {
		return nil, fmt.Errorf("%w: customerName must not exceed %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return &parsedRequest{
		date:      date,
		startTime: startTime,
		weekday:   weekday,
	}, nil
}

// validateSlotCount правило 1: количество слотов в пределах [1, maxSlots]
func validateSlotCount(slotCount, maxSlots int) error {
	if slotCount < domain.MinSlotsPerAppointment || slotCount > maxSlots {
		return fmt.Errorf("%w: slotCount must be between %d and %d",
			ErrInvalidSlotCount, domain.MinSlotsPerAppointment, maxSlots)
	}
	return nil
}

// validateAlignment правило 2: время попадает на границу сетки,
// начинающейся в начале рабочего дня
func validateAlignment(startMinutes, gridStart, slotDuration int) error {
	if !timegrid.IsAligned(startMinutes-gridStart, slotDuration) {
		return fmt.Errorf("%w: time must fall on a %d-minute grid boundary", ErrMisalignedTime, slotDuration)
	}
	return nil
}

// validateOperationalDay правило 3: день недели рабочий
func validateOperationalDay(config *domain.ScheduleConfig, weekday int) error {
	if !config.IsOperationalDay(weekday) {
		return fmt.Errorf("%w: weekday %d", ErrNonOperationalDay, weekday)
	}
	return nil
}

// validateWithinHours правило 4: занимаемый интервал целиком в рабочих часах
func validateWithinHours(startMinutes, endMinutes, gridStart, gridEnd int) error {
	if startMinutes < gridStart || endMinutes > gridEnd {
		return ErrOutsideOperationalHours
	}
	return nil
}

// checkWindowConflicts правило 6: интервал не пересекается
// ни с одним действующим окном недоступности
func checkWindowConflicts(startMinutes, slotDuration, slotCount int, windows []*domain.UnavailableWindow) error {
	for _, w := range windows {
		wStart, err := w.StartMinutes()
		if err != nil {
			return fmt.Errorf("%w: stored window %s: %v", ErrInternal, w.ID, err)
		}
		wEnd, err := w.EndMinutes()
		if err != nil {
			return fmt.Errorf("%w: stored window %s: %v", ErrInternal, w.ID, err)
		}

		if timegrid.Overlaps(startMinutes, slotDuration, slotCount, wStart, wEnd) {
			return fmt.Errorf("%w: window %s-%s", ErrWindowConflict, w.StartTime, w.EndTime)
		}
	}
	return nil
}

// checkAppointmentConflicts правило 7: интервал не пересекается
// ни с одной существующей записью на эту дату.
// Интервал существующей записи считается по сохраненной в ней длительности слота
func checkAppointmentConflicts(startMinutes, slotDuration, slotCount int, appointments []*domain.Appointment) error {
	for _, a := range appointments {
		aStart, err := a.StartMinutes()
		if err != nil {
			return fmt.Errorf("%w: stored appointment %s: %v", ErrInternal, a.ID, err)
		}
		aEnd, err := a.EndMinutes()
		if err != nil {
			return fmt.Errorf("%w: stored appointment %s: %v", ErrInternal, a.ID, err)
		}

		if timegrid.Overlaps(startMinutes, slotDuration, slotCount, aStart, aEnd) {
			return fmt.Errorf("%w: appointment at %s", ErrSlotConflict, a.StartTime)
		}
	}
	return nil
}
