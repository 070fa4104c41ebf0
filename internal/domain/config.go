package domain

import (
	"time"

	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// ScheduleConfig represents the single effective scheduling configuration.
// The system keeps at most one logical instance: it is created lazily on
// first read (from defaults) and mutated only via explicit update.
type ScheduleConfig struct {
	ID                     int64
	SlotDurationMinutes    int
	MaxSlotsPerAppointment int
	OperationalDays        []int // ISO weekdays: 1 (Monday) .. 7 (Sunday)
	OperationalStartTime   types.TimeString
	OperationalEndTime     types.TimeString
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsOperationalDay returns true if the given ISO weekday (1..7) is in the
// configured operational day set
func (c *ScheduleConfig) IsOperationalDay(weekday int) bool {
	for _, d := range c.OperationalDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// DefaultScheduleConfig возвращает конфигурацию со значениями по умолчанию
func DefaultScheduleConfig() *ScheduleConfig {
	days := make([]int, len(DefaultOperationalDays))
	copy(days, DefaultOperationalDays)

	return &ScheduleConfig{
		SlotDurationMinutes:    DefaultSlotDurationMinutes,
		MaxSlotsPerAppointment: DefaultMaxSlotsPerAppointment,
		OperationalDays:        days,
		OperationalStartTime:   types.TimeString(DefaultOperationalStartTime),
		OperationalEndTime:     types.TimeString(DefaultOperationalEndTime),
	}
}
