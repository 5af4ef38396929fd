package review_booking

import (
	"github.com/google/uuid"

	reviewBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/review_booking"
)

// ReviewBookingRequest HTTP request model
type ReviewBookingRequest struct {
	Action string  `json:"action"` // APPROVE или REJECT
	Note   *string `json:"note,omitempty"`
}

// ReviewBookingResponse HTTP response model
type ReviewBookingResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Status    string    `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReviewBookingRequest) ToUseCaseRequest(bookingID uuid.UUID) *reviewBooking.Request {
	return &reviewBooking.Request{
		BookingID: bookingID,
		Action:    r.Action,
		Note:      r.Note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reviewBooking.Response) *ReviewBookingResponse {
	return &ReviewBookingResponse{
		BookingID: resp.BookingID,
		Status:    resp.Status,
	}
}
