package models

import (
	"time"

	"github.com/m04kA/appointment-scheduler/internal/domain"
)

// Request модели

// CreateWindowRequest запрос на создание окна недоступности
// Область действия: либо weekday (ISO 1..7, каждую неделю),
// либо date (разовое окно) - ровно одно из двух
type CreateWindowRequest struct {
	Weekday   *int    `json:"weekday,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Note      *string `json:"note,omitempty"`
}

// UpdateWindowRequest запрос на обновление окна недоступности
// Все поля опциональны - обновляются только переданные значения
// Передача weekday переключает окно на повторяющееся, date - на разовое
type UpdateWindowRequest struct {
	Weekday   *int    `json:"weekday,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// Response модели

// WindowResponse ответ с данными окна недоступности
type WindowResponse struct {
	ID        string    `json:"id"`
	Weekday   *int      `json:"weekday,omitempty"`
	Date      *string   `json:"date,omitempty"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// WindowListResponse ответ со списком окон
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// Методы конвертации

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.UnavailableWindow) *WindowResponse {
	if w == nil {
		return nil
	}

	resp := &WindowResponse{
		ID:        w.ID.String(),
		StartTime: w.StartTime.String(),
		EndTime:   w.EndTime.String(),
		Note:      w.Note,
		CreatedAt: w.CreatedAt,
	}

	if w.Scope.IsRecurring() {
		weekday := w.Scope.Weekday
		resp.Weekday = &weekday
	} else {
		date := w.Scope.Date.String()
		resp.Date = &date
	}

	return resp
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(windows []*domain.UnavailableWindow) *WindowListResponse {
	resp := &WindowListResponse{
		Windows: make([]WindowResponse, 0, len(windows)),
	}

	for _, w := range windows {
		if wr := FromDomainWindow(w); wr != nil {
			resp.Windows = append(resp.Windows, *wr)
		}
	}

	return resp
}
