package domain

// Default scheduling configuration values
// Используются, когда в БД еще нет конфигурации и нет переопределений в config.toml
const (
	DefaultSlotDurationMinutes    = 30
	DefaultMaxSlotsPerAppointment = 1
	DefaultOperationalStartTime   = "09:00"
	DefaultOperationalEndTime     = "18:00"
)

// DefaultOperationalDays рабочие дни по умолчанию: понедельник - пятница
var DefaultOperationalDays = []int{1, 2, 3, 4, 5}

// Business validation constants
const (
	MinSlotDurationMinutes    = 5
	MaxSlotDurationMinutes    = 60
	MinSlotsPerAppointment    = 1
	MaxSlotsPerAppointmentCap = 5

	MinWeekday = 1 // понедельник (ISO)
	MaxWeekday = 7 // воскресенье (ISO)

	MaxNoteLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
