package domain

import "time"

// TimeRange is a half-open interval [Start, End)
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open ranges share at least one instant
// Ranges that only touch (one ends where the other starts) do not overlap
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// IsValid reports whether the range is non-empty
func (r TimeRange) IsValid() bool {
	return !r.Start.IsZero() && r.End.After(r.Start)
}

// Slot is a candidate appointment interval offered to a customer
type Slot struct {
	Start time.Time
	End   time.Time
	Label string // HH:MM in business local time
}
