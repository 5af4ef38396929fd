package review_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	reviewBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/review_booking"
)

const (
	msgInvalidBookingID      = "invalid booking id"
	msgInvalidRequestBody    = "invalid request body"
	msgNotFound              = "booking not found"
	msgInvalidStatus         = "booking has already been reviewed"
	msgSlotNoLongerAvailable = "slot is no longer available, another booking was confirmed for this time"
)

type Handler struct {
	useCase ReviewBookingUseCase
	logger  Logger
}

func NewHandler(useCase ReviewBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/{bookingId}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathUUID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/review - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ReviewBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, reviewBooking.ErrInvalidInput):
			h.logger.Warn("POST /admin/bookings/{id}/review - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, reviewBooking.ErrBookingNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/review - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reviewBooking.ErrInvalidStatus):
			h.logger.Warn("POST /admin/bookings/{id}/review - Invalid status: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgInvalidStatus)

		case errors.Is(err, reviewBooking.ErrSlotNoLongerAvailable):
			h.logger.Warn("POST /admin/bookings/{id}/review - Slot no longer available: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgSlotNoLongerAvailable)

		default:
			h.logger.Error("POST /admin/bookings/{id}/review - Failed to review booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/review - Booking reviewed: booking_id=%s, status=%s", bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
