package models

import (
	"time"

	"github.com/m04kA/appointment-scheduler/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
// Date опциональна - nil означает все даты
type ListAppointmentsRequest struct {
	Date *string `json:"date,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID                  string    `json:"id"`
	Date                string    `json:"date"`
	StartTime           string    `json:"startTime"`
	EndTime             string    `json:"endTime"`
	SlotCount           int       `json:"slotCount"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	CustomerName        *string   `json:"customerName,omitempty"`
	CustomerEmail       *string   `json:"customerEmail,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
// Время окончания вычисляется из сохраненной длительности слота
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	// Записи в хранилище всегда валидны, ошибка смещения здесь невозможна
	endTime, _ := a.StartTime.AddMinutes(a.SlotCount * a.SlotDurationMinutes)

	return &AppointmentResponse{
		ID:                  a.ID.String(),
		Date:                a.Date.String(),
		StartTime:           a.StartTime.String(),
		EndTime:             endTime.String(),
		SlotCount:           a.SlotCount,
		SlotDurationMinutes: a.SlotDurationMinutes,
		CustomerName:        a.CustomerName,
		CustomerEmail:       a.CustomerEmail,
		CreatedAt:           a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if ar := FromDomainAppointment(a); ar != nil {
			resp.Appointments = append(resp.Appointments, *ar)
		}
	}

	return resp
}
