package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
)

// UseCase use case для отмены заявки администратором
type UseCase struct {
	bookingRepo   BookingRepository
	confirmedRepo ConfirmedBookingRepository
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	confirmedRepo ConfirmedBookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		confirmedRepo: confirmedRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute отменяет заявку; у подтверждённой заявки в той же транзакции освобождается интервал
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BookingID == uuid.Nil {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	uc.logger.Info("CancelBooking: booking=%s", req.BookingID)

	var released bool

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%s cannot be cancelled, status=%s", booking.ID, booking.Status)
			return ErrCannotCancel
		}

		if booking.Status == domain.StatusConfirmed {
			n, err := uc.confirmedRepo.DeleteByBookingRequestID(txCtx, booking.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to release confirmed slot: %v", ErrInternal, err)
			}
			released = n > 0
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCancelled); err != nil {
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			uc.logger.Warn("CancelBooking: booking id=%s not found", req.BookingID)
			return nil, err
		case errors.Is(err, ErrCannotCancel):
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CancelBooking: booking id=%s: %v", req.BookingID, err)
			return nil, err
		default:
			uc.logger.Error("CancelBooking: booking id=%s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CancelBooking: booking id=%s cancelled, released_slot=%t", req.BookingID, released)

	return &Response{
		BookingID:    req.BookingID,
		Status:       string(domain.StatusCancelled),
		ReleasedSlot: released,
	}, nil
}
