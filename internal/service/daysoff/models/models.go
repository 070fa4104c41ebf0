package models

import (
	"time"

	"github.com/m04kA/appointment-scheduler/internal/domain"
)

// Request модели

// CreateDayOffRequest запрос на создание выходного дня
type CreateDayOffRequest struct {
	Date string  `json:"date"`
	Note *string `json:"note,omitempty"`
}

// UpdateDayOffRequest запрос на обновление примечания выходного
// Дата выходного неизменяема после создания
type UpdateDayOffRequest struct {
	Note *string `json:"note,omitempty"`
}

// Response модели

// DayOffResponse ответ с данными выходного дня
type DayOffResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// DayOffListResponse ответ со списком выходных
type DayOffListResponse struct {
	DaysOff []DayOffResponse `json:"daysOff"`
}

// Методы конвертации

// FromDomainDayOff конвертирует domain модель в DTO
func FromDomainDayOff(d *domain.DayOff) *DayOffResponse {
	if d == nil {
		return nil
	}

	return &DayOffResponse{
		ID:        d.ID.String(),
		Date:      d.Date.String(),
		Note:      d.Note,
		CreatedAt: d.CreatedAt,
	}
}

// FromDomainDayOffList конвертирует список domain моделей в DTO
func FromDomainDayOffList(daysOff []*domain.DayOff) *DayOffListResponse {
	resp := &DayOffListResponse{
		DaysOff: make([]DayOffResponse, 0, len(daysOff)),
	}

	for _, d := range daysOff {
		if dr := FromDomainDayOff(d); dr != nil {
			resp.DaysOff = append(resp.DaysOff, *dr)
		}
	}

	return resp
}
