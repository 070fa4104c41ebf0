package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/appointment-scheduler/pkg/types"
)

// DayOff represents a calendar date fully closed to bookings (holiday,
// maintenance, etc.). At most one day-off may exist per date.
type DayOff struct {
	ID        uuid.UUID
	Date      types.DateString
	Note      *string
	CreatedAt time.Time
}
