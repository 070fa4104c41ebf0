package models

import (
	"time"

	"github.com/m04kA/appointment-scheduler/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление конфигурации расписания
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	SlotDurationMinutes    *int    `json:"slotDurationMinutes,omitempty"`
	MaxSlotsPerAppointment *int    `json:"maxSlotsPerAppointment,omitempty"`
	OperationalDays        *[]int  `json:"operationalDays,omitempty"`
	OperationalStartTime   *string `json:"operationalStartTime,omitempty"`
	OperationalEndTime     *string `json:"operationalEndTime,omitempty"`
}

// Response модели

// ConfigResponse ответ с данными конфигурации расписания
type ConfigResponse struct {
	SlotDurationMinutes    int       `json:"slotDurationMinutes"`
	MaxSlotsPerAppointment int       `json:"maxSlotsPerAppointment"`
	OperationalDays        []int     `json:"operationalDays"`
	OperationalStartTime   string    `json:"operationalStartTime"`
	OperationalEndTime     string    `json:"operationalEndTime"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.ScheduleConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		SlotDurationMinutes:    c.SlotDurationMinutes,
		MaxSlotsPerAppointment: c.MaxSlotsPerAppointment,
		OperationalDays:        c.OperationalDays,
		OperationalStartTime:   c.OperationalStartTime.String(),
		OperationalEndTime:     c.OperationalEndTime.String(),
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}
