package cancel_booking

import (
	"github.com/google/uuid"

	cancelBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/cancel_booking"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID    uuid.UUID `json:"bookingId"`
	Status       string    `json:"status"`
	ReleasedSlot bool      `json:"releasedSlot"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		BookingID:    resp.BookingID,
		Status:       resp.Status,
		ReleasedSlot: resp.ReleasedSlot,
	}
}
