package review_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID == uuid.Nil {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	req.Action = strings.ToUpper(strings.TrimSpace(req.Action))
	if req.Action != ActionApprove && req.Action != ActionReject {
		return fmt.Errorf("%w: action must be APPROVE or REJECT", ErrInvalidInput)
	}

	if req.Note != nil {
		note := strings.TrimSpace(*req.Note)
		if note == "" {
			req.Note = nil
			return nil
		}
		if len(note) > domain.MaxReviewNoteLength {
			return fmt.Errorf("%w: note must not exceed %d characters", ErrInvalidInput, domain.MaxReviewNoteLength)
		}
		req.Note = &note
	}

	return nil
}
