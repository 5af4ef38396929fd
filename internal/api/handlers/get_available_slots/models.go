package get_available_slots

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
)

var (
	errInvalidDate     = errors.New("invalid date")
	errInvalidDuration = errors.New("invalid duration")
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	DurationMinutes int             `json:"durationMinutes"`
	Closed          bool            `json:"closed"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Start string `json:"start"` // RFC 3339
	End   string `json:"end"`   // RFC 3339
	Label string `json:"label"` // HH:MM
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start: slot.Start.Format(time.RFC3339),
			End:   slot.End.Format(time.RFC3339),
			Label: slot.Label,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Closed:          resp.Closed,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Отсутствующая длительность означает длительность по умолчанию, явно заданная должна быть положительной
func ToUseCaseRequest(dateStr, durationStr string, serviceID *uuid.UUID) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	var duration *int
	if durationStr != "" {
		minutes, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidDuration, err)
		}
		if minutes <= 0 {
			return nil, fmt.Errorf("%w: %d is not positive", errInvalidDuration, minutes)
		}
		duration = ptr.Ptr(minutes)
	}

	return &getAvailableSlots.Request{
		Date:            date,
		DurationMinutes: duration,
		ServiceID:       serviceID,
	}, nil
}
