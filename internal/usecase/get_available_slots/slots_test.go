package get_available_slots

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var sast = time.FixedZone("SAST", 2*60*60)

func studioHours() domain.BusinessHours {
	return domain.BusinessHours{
		OpenHour:            8,
		CloseHour:           18,
		SlotIntervalMinutes: 30,
		ClosedWeekdays:      []time.Weekday{time.Sunday},
		Location:            sast,
	}
}

// tuesday 2026-03-10
func clock(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, sast)
}

func labels(slots []domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label
	}
	return out
}

func TestGenerateSlots_LongServiceEmptyDay(t *testing.T) {
	slots := GenerateSlots(clock(0, 0), 240, nil, nil, studioHours(), clock(7, 0))

	require.Len(t, slots, 13)
	assert.Equal(t, clock(8, 0), slots[0].Start)
	assert.Equal(t, clock(12, 0), slots[0].End)
	assert.Equal(t, clock(14, 0), slots[12].Start)
	assert.Equal(t, clock(18, 0), slots[12].End)
	assert.Equal(t, "08:00", slots[0].Label)
	assert.Equal(t, "14:00", slots[12].Label)
}

func TestGenerateSlots_ConfirmedBookingBlocksOverlaps(t *testing.T) {
	confirmed := []domain.TimeRange{{Start: clock(10, 0), End: clock(14, 0)}}

	slots := GenerateSlots(clock(0, 0), 240, confirmed, nil, studioHours(), clock(7, 0))

	assert.Equal(t, []string{"14:00"}, labels(slots))
}

func TestGenerateSlots_PendingBlocksLikeConfirmed(t *testing.T) {
	pending := []domain.TimeRange{{Start: clock(9, 0), End: clock(10, 0)}}

	withPending := GenerateSlots(clock(0, 0), 60, nil, pending, studioHours(), clock(7, 0))
	withConfirmed := GenerateSlots(clock(0, 0), 60, pending, nil, studioHours(), clock(7, 0))

	assert.Equal(t, withConfirmed, withPending)
	assert.NotContains(t, labels(withPending), "08:30")
	assert.NotContains(t, labels(withPending), "09:00")
	assert.NotContains(t, labels(withPending), "09:30")
	assert.Contains(t, labels(withPending), "08:00")
	assert.Contains(t, labels(withPending), "10:00")
}

func TestGenerateSlots_TodayExcludesPast(t *testing.T) {
	slots := GenerateSlots(clock(0, 0), 60, nil, nil, studioHours(), clock(15, 0))

	assert.Equal(t, []string{"15:00", "15:30", "16:00", "16:30", "17:00"}, labels(slots))
}

func TestGenerateSlots_TouchingRangeNotExcluded(t *testing.T) {
	confirmed := []domain.TimeRange{{Start: clock(9, 0), End: clock(10, 0)}}

	slots := GenerateSlots(clock(0, 0), 60, confirmed, nil, studioHours(), clock(7, 0))

	// 08:00-09:00 заканчивается ровно в начале брони, 10:00 начинается ровно в её конце
	assert.Contains(t, labels(slots), "08:00")
	assert.Contains(t, labels(slots), "10:00")
	assert.NotContains(t, labels(slots), "08:30")
	assert.NotContains(t, labels(slots), "09:30")
}

func TestGenerateSlots_ExactFitAtClose(t *testing.T) {
	slots := GenerateSlots(clock(0, 0), 60, nil, nil, studioHours(), clock(7, 0))

	last := slots[len(slots)-1]
	assert.Equal(t, "17:00", last.Label)
	assert.Equal(t, clock(18, 0), last.End)
}

func TestGenerateSlots_InvalidInputsYieldNothing(t *testing.T) {
	hours := studioHours()
	assert.Empty(t, GenerateSlots(clock(0, 0), 0, nil, nil, hours, clock(7, 0)))
	assert.Empty(t, GenerateSlots(clock(0, 0), -30, nil, nil, hours, clock(7, 0)))
	assert.Empty(t, GenerateSlots(clock(0, 0), 11*60, nil, nil, hours, clock(7, 0)))

	hours.SlotIntervalMinutes = 0
	assert.Empty(t, GenerateSlots(clock(0, 0), 60, nil, nil, hours, clock(7, 0)))
}

func TestGenerateSlots_DateTimeOfDayIgnored(t *testing.T) {
	a := GenerateSlots(clock(0, 0), 90, nil, nil, studioHours(), clock(7, 0))
	b := GenerateSlots(clock(16, 45), 90, nil, nil, studioHours(), clock(7, 0))

	assert.Equal(t, a, b)
}

func TestGenerateSlots_FutureDayIgnoresNow(t *testing.T) {
	tomorrow := clock(0, 0).AddDate(0, 0, 1)

	slots := GenerateSlots(tomorrow, 60, nil, nil, studioHours(), clock(17, 0))

	assert.Len(t, slots, 19)
}

func TestGenerateSlots_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	hours := studioHours()

	for i := 0; i < 200; i++ {
		duration := 15 * (1 + rng.Intn(16))
		now := clock(6+rng.Intn(12), 15*rng.Intn(4))

		var confirmed, pending []domain.TimeRange
		nConfirmed, nPending := rng.Intn(5), rng.Intn(5)
		for j := 0; j < nConfirmed; j++ {
			start := clock(7+rng.Intn(11), 10*rng.Intn(6))
			confirmed = append(confirmed, domain.TimeRange{Start: start, End: start.Add(time.Duration(10+rng.Intn(180)) * time.Minute)})
		}
		for j := 0; j < nPending; j++ {
			start := clock(7+rng.Intn(11), 10*rng.Intn(6))
			pending = append(pending, domain.TimeRange{Start: start, End: start.Add(time.Duration(10+rng.Intn(180)) * time.Minute)})
		}

		slots := GenerateSlots(clock(0, 0), duration, confirmed, pending, hours, now)
		again := GenerateSlots(clock(0, 0), duration, confirmed, pending, hours, now)
		require.Equal(t, slots, again, "must be deterministic")

		open, closing := hours.Window(clock(0, 0))
		for k, s := range slots {
			assert.False(t, s.Start.Before(now), "slot %s starts before now", s.Label)
			assert.False(t, s.End.After(closing), "slot %s ends after close", s.Label)
			assert.Equal(t, time.Duration(duration)*time.Minute, s.End.Sub(s.Start))
			assert.Zero(t, s.Start.Sub(open)%(30*time.Minute), "slot %s is off grid", s.Label)
			if k > 0 {
				assert.True(t, s.Start.After(slots[k-1].Start))
			}
			for _, r := range append(append([]domain.TimeRange{}, confirmed...), pending...) {
				assert.False(t, s.Start.Before(r.End) && s.End.After(r.Start), "slot %s overlaps a reservation", s.Label)
			}
		}
	}
}
