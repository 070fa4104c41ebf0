package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// ScopeKind различает повторяющиеся (по дню недели) и разовые (по дате) окна
type ScopeKind string

const (
	ScopeRecurring ScopeKind = "recurring"
	ScopeOneOff    ScopeKind = "one_off"
)

var (
	// ErrInvalidScope возвращается для окна с некорректной областью действия
	ErrInvalidScope = errors.New("domain: window scope must be either a weekday (1..7) or a date")
)

// WindowScope is a tagged variant describing when an unavailable window
// applies: either every week on a given ISO weekday (Recurring), or on a
// single calendar date (OneOff). Constructing it through NewRecurringScope /
// NewOneOffScope makes the illegal "both set" and "neither set" states
// unrepresentable.
type WindowScope struct {
	Kind    ScopeKind
	Weekday int              // заполнен только для ScopeRecurring
	Date    types.DateString // заполнена только для ScopeOneOff
}

// NewRecurringScope создает область действия по дню недели (ISO 1..7)
func NewRecurringScope(weekday int) (WindowScope, error) {
	if weekday < MinWeekday || weekday > MaxWeekday {
		return WindowScope{}, fmt.Errorf("%w: weekday %d", ErrInvalidScope, weekday)
	}
	return WindowScope{Kind: ScopeRecurring, Weekday: weekday}, nil
}

// NewOneOffScope создает область действия по конкретной дате
func NewOneOffScope(date types.DateString) (WindowScope, error) {
	if err := date.Validate(); err != nil {
		return WindowScope{}, fmt.Errorf("%w: %v", ErrInvalidScope, err)
	}
	return WindowScope{Kind: ScopeOneOff, Date: date}, nil
}

// IsRecurring возвращает true для окна по дню недели
func (s WindowScope) IsRecurring() bool {
	return s.Kind == ScopeRecurring
}

// AppliesTo проверяет, действует ли область на указанную дату
// с указанным ISO днем недели
func (s WindowScope) AppliesTo(date types.DateString, weekday int) bool {
	if s.Kind == ScopeRecurring {
		return s.Weekday == weekday
	}
	return s.Date == date
}

// Equal сравнивает две области действия
func (s WindowScope) Equal(other WindowScope) bool {
	if s.Kind != other.Kind {
		return false
	}
	if s.Kind == ScopeRecurring {
		return s.Weekday == other.Weekday
	}
	return s.Date == other.Date
}

// String возвращает представление области для логов
func (s WindowScope) String() string {
	if s.Kind == ScopeRecurring {
		return fmt.Sprintf("weekday=%d", s.Weekday)
	}
	return fmt.Sprintf("date=%s", s.Date)
}

// UnavailableWindow represents a recurring or one-off sub-interval of the day
// closed to bookings (lunch break, cleaning, a one-time closure, etc.).
// Windows sharing a scope must not overlap one another.
type UnavailableWindow struct {
	ID        uuid.UUID
	Scope     WindowScope
	StartTime types.TimeString
	EndTime   types.TimeString
	Note      *string
	CreatedAt time.Time
}

// StartMinutes возвращает начало окна в минутах с полуночи
func (w *UnavailableWindow) StartMinutes() (int, error) {
	return w.StartTime.Minutes()
}

// EndMinutes возвращает конец окна в минутах с полуночи
func (w *UnavailableWindow) EndMinutes() (int, error) {
	return w.EndTime.Minutes()
}
