package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// GenerateSlots возвращает свободные слоты на календарный день date
//
// Кандидаты строятся от времени открытия с шагом hours.SlotIntervalMinutes, пока слот
// длительностью durationMinutes целиком помещается до закрытия (ровно до закрытия - можно).
// Кандидат отбрасывается, если:
// - начинается строго раньше now (слот, начинающийся ровно в now, остаётся)
// - пересекается с подтверждённым бронированием
// - пересекается с заявкой, ожидающей подтверждения оплаты
//
// Пересечение проверяется для полуоткрытых интервалов [start, end):
// слот 12:00-13:00 и бронирование 13:00-14:00 НЕ пересекаются.
//
// Функция чистая: время передаётся явно, выходные дни проверяет вызывающий код.
// Некорректная длительность или шаг дают пустой результат.
func GenerateSlots(
	date time.Time,
	durationMinutes int,
	confirmed []domain.TimeRange,
	pending []domain.TimeRange,
	hours domain.BusinessHours,
	now time.Time,
) []domain.Slot {
	slots := make([]domain.Slot, 0)

	if durationMinutes <= 0 || hours.SlotIntervalMinutes <= 0 {
		return slots
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(hours.SlotIntervalMinutes) * time.Minute
	windowStart, windowEnd := hours.Window(date)

	for cursor := windowStart; !cursor.Add(duration).After(windowEnd); cursor = cursor.Add(step) {
		if cursor.Before(now) {
			continue
		}

		candidate := domain.TimeRange{Start: cursor, End: cursor.Add(duration)}
		if overlapsAny(candidate, confirmed) || overlapsAny(candidate, pending) {
			continue
		}

		slots = append(slots, domain.Slot{
			Start: candidate.Start,
			End:   candidate.End,
			Label: cursor.Format(domain.TimeFormat),
		})
	}

	return slots
}

// overlapsAny проверяет пересечение кандидата хотя бы с одним из интервалов
func overlapsAny(candidate domain.TimeRange, ranges []domain.TimeRange) bool {
	for _, r := range ranges {
		if candidate.Overlaps(r) {
			return true
		}
	}
	return false
}
