package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidBusinessHours returned by BusinessHours.Validate
var ErrInvalidBusinessHours = errors.New("invalid business hours")

// BusinessHours describes when the studio takes appointments
type BusinessHours struct {
	OpenHour            int
	CloseHour           int
	SlotIntervalMinutes int
	ClosedWeekdays      []time.Weekday
	Location            *time.Location // nil - location of the requested date
}

// Validate checks the invariants open < close and interval > 0
func (h BusinessHours) Validate() error {
	if h.OpenHour < 0 || h.CloseHour > 24 || h.OpenHour >= h.CloseHour {
		return fmt.Errorf("%w: open hour %d must be before close hour %d", ErrInvalidBusinessHours, h.OpenHour, h.CloseHour)
	}
	if h.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("%w: slot interval must be positive", ErrInvalidBusinessHours)
	}
	return nil
}

// In returns the business-local representation of the instant t
func (h BusinessHours) In(t time.Time) time.Time {
	if h.Location == nil {
		return t
	}
	return t.In(h.Location)
}

// Midnight returns 00:00 in business location of the calendar day written in date
// Only the year, month and day of date are used
func (h BusinessHours) Midnight(date time.Time) time.Time {
	loc := h.Location
	if loc == nil {
		loc = date.Location()
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// IsClosed reports whether the studio is closed on the calendar day of date
func (h BusinessHours) IsClosed(date time.Time) bool {
	weekday := h.Midnight(date).Weekday()
	for _, closed := range h.ClosedWeekdays {
		if closed == weekday {
			return true
		}
	}
	return false
}

// DayBounds returns midnight of the calendar day of date and midnight of the next day
func (h BusinessHours) DayBounds(date time.Time) (time.Time, time.Time) {
	start := h.Midnight(date)
	return start, start.AddDate(0, 0, 1)
}

// Window returns the open and close instants of the calendar day of date
func (h BusinessHours) Window(date time.Time) (time.Time, time.Time) {
	midnight := h.Midnight(date)
	y, m, d := midnight.Date()
	open := time.Date(y, m, d, h.OpenHour, 0, 0, 0, midnight.Location())
	closing := time.Date(y, m, d, h.CloseHour, 0, 0, 0, midnight.Location())
	return open, closing
}

// Contains reports whether r lies entirely within business hours of the local day it starts on
func (h BusinessHours) Contains(r TimeRange) bool {
	open, closing := h.Window(h.In(r.Start))
	return !r.Start.Before(open) && !r.End.After(closing)
}
