package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/appointment-scheduler/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date          string  `json:"date"`      // "2026-03-16"
	Time          string  `json:"time"`      // "10:00"
	Slots         int     `json:"slots"`     // Количество последовательных слотов
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                  string  `json:"id"`
	Date                string  `json:"date"`
	StartTime           string  `json:"startTime"`
	EndTime             string  `json:"endTime"`
	SlotCount           int     `json:"slotCount"`
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	CustomerName        *string `json:"customerName,omitempty"`
	CustomerEmail       *string `json:"customerEmail,omitempty"`
	CreatedAt           string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		Date:          r.Date,
		StartTime:     r.Time,
		SlotCount:     r.Slots,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                  resp.ID.String(),
		Date:                resp.Date.String(),
		StartTime:           resp.StartTime.String(),
		EndTime:             resp.EndTime.String(),
		SlotCount:           resp.SlotCount,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		CustomerName:        resp.CustomerName,
		CustomerEmail:       resp.CustomerEmail,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
	}
}
