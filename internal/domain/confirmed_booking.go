package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConfirmedBooking is an approved reservation of a time range
// At most one confirmed booking may cover any instant
type ConfirmedBooking struct {
	ID               uuid.UUID
	BookingRequestID uuid.UUID
	StartTime        time.Time
	EndTime          time.Time
	CreatedAt        time.Time
}

// Range returns the reserved time range
func (c *ConfirmedBooking) Range() TimeRange {
	return TimeRange{Start: c.StartTime, End: c.EndTime}
}
