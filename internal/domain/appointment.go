package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// Appointment represents a booked appointment occupying one or more
// contiguous slots on a calendar date.
//
// SlotDurationMinutes is a snapshot of the configured slot duration at
// creation time: the occupied interval of an existing appointment never
// changes when the configuration is updated later.
type Appointment struct {
	ID                  uuid.UUID
	Date                types.DateString
	StartTime           types.TimeString
	SlotCount           int
	SlotDurationMinutes int
	CustomerName        *string
	CustomerEmail       *string
	CreatedAt           time.Time
}

// StartMinutes возвращает начало занимаемого интервала в минутах с полуночи
func (a *Appointment) StartMinutes() (int, error) {
	return a.StartTime.Minutes()
}

// EndMinutes возвращает конец занимаемого интервала (полуоткрытая граница)
func (a *Appointment) EndMinutes() (int, error) {
	start, err := a.StartTime.Minutes()
	if err != nil {
		return 0, err
	}
	return start + a.SlotCount*a.SlotDurationMinutes, nil
}

// AppointmentsFilter фильтр для получения списка записей
type AppointmentsFilter struct {
	Date *types.DateString // nil - без фильтрации по дате
}
