package review_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	confirmedRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/confirmed"
	notificationModels "github.com/m04kA/SMC-StudioBooking/internal/service/notifications/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/txmanager"
)

const defaultServiceName = "Hair Service"

// UseCase use case для проверки заявки администратором
// Подтверждение - единственное место, где окончательно решается конфликт по времени
type UseCase struct {
	bookingRepo   BookingRepository
	confirmedRepo ConfirmedBookingRepository
	proofRepo     ProofRepository
	serviceRepo   ServiceRepository
	txManager     TransactionManager
	notifier      Notifier
	metrics       Metrics
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	confirmedRepo ConfirmedBookingRepository,
	proofRepo ProofRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		confirmedRepo: confirmedRepo,
		proofRepo:     proofRepo,
		serviceRepo:   serviceRepo,
		txManager:     txManager,
		notifier:      notifier,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute выполняет use case проверки заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReviewBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ReviewBooking: booking=%s, action=%s", req.BookingID, req.Action)

	// 2. Меняем состояние в одной сериализуемой транзакции
	var booking *domain.BookingRequest
	var newStatus domain.BookingStatus

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		locked, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if !locked.CanBeReviewed() {
			uc.logger.Warn("ReviewBooking: booking id=%s has status=%s", locked.ID, locked.Status)
			return fmt.Errorf("%w: current status is %s", ErrInvalidStatus, locked.Status)
		}

		if req.Action == ActionApprove {
			err = uc.approve(txCtx, locked, req.Note)
			newStatus = domain.StatusConfirmed
		} else {
			err = uc.reject(txCtx, locked, req.Note)
			newStatus = domain.StatusRejected
		}
		if err != nil {
			return err
		}

		booking = locked
		return nil
	})

	if err != nil {
		return nil, uc.mapError(req, err)
	}

	uc.logger.Info("ReviewBooking: booking id=%s is now %s", booking.ID, newStatus)

	// 3. Письма отправляются после фиксации транзакции
	if newStatus == domain.StatusConfirmed {
		uc.notifier.SendBookingConfirmed(notificationModels.BookingEmail{
			BookingID:    booking.ID.String(),
			CustomerName: booking.CustomerName,
			Email:        booking.Email,
			ServiceName:  uc.serviceName(ctx, booking.ServiceID),
			StartTime:    booking.StartTime,
			AmountDue:    booking.AmountDue,
			Reference:    booking.Reference,
		})
	} else {
		uc.notifier.SendBookingRejected(booking.Email, booking.CustomerName, req.Note)
	}

	return &Response{
		BookingID: booking.ID,
		Status:    string(newStatus),
	}, nil
}

// approve проверяет пересечения и фиксирует интервал
func (uc *UseCase) approve(ctx context.Context, booking *domain.BookingRequest, note *string) error {
	overlap, err := uc.confirmedRepo.HasOverlap(ctx, booking.Range())
	if err != nil {
		return fmt.Errorf("%w: failed to check confirmed bookings: %w", ErrInternal, err)
	}

	if overlap {
		uc.logger.Warn("ReviewBooking: booking id=%s overlaps a confirmed booking", booking.ID)
		return ErrSlotNoLongerAvailable
	}

	_, err = uc.confirmedRepo.Create(ctx, &domain.ConfirmedBooking{
		ID:               uuid.New(),
		BookingRequestID: booking.ID,
		StartTime:        booking.StartTime,
		EndTime:          booking.EndTime,
	})
	if err != nil {
		if errors.Is(err, confirmedRepo.ErrSlotTaken) {
			uc.logger.Warn("ReviewBooking: exclusion constraint rejected booking id=%s", booking.ID)
			return ErrSlotNoLongerAvailable
		}
		return fmt.Errorf("%w: failed to create confirmed booking: %w", ErrInternal, err)
	}

	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusConfirmed); err != nil {
		return fmt.Errorf("%w: failed to update booking status: %w", ErrInternal, err)
	}

	if _, err := uc.proofRepo.UpdateVerificationByBookingRequest(ctx, booking.ID, domain.VerificationApproved, note); err != nil {
		return fmt.Errorf("%w: failed to update payment proofs: %w", ErrInternal, err)
	}

	return nil
}

// reject отклоняет заявку и её чеки
func (uc *UseCase) reject(ctx context.Context, booking *domain.BookingRequest, note *string) error {
	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusRejected); err != nil {
		return fmt.Errorf("%w: failed to update booking status: %w", ErrInternal, err)
	}

	if _, err := uc.proofRepo.UpdateVerificationByBookingRequest(ctx, booking.ID, domain.VerificationRejected, note); err != nil {
		return fmt.Errorf("%w: failed to update payment proofs: %w", ErrInternal, err)
	}

	return nil
}

func (uc *UseCase) mapError(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		uc.logger.Warn("ReviewBooking: booking id=%s not found", req.BookingID)
		return ErrBookingNotFound
	case errors.Is(err, ErrInvalidStatus):
		return err
	case errors.Is(err, ErrSlotNoLongerAvailable):
		uc.metrics.IncBookingConflict("approve")
		return ErrSlotNoLongerAvailable
	case errors.Is(err, txmanager.ErrSerialization):
		// Конкурентное подтверждение пересекающейся заявки
		uc.logger.Warn("ReviewBooking: serialization conflict for booking id=%s: %v", req.BookingID, err)
		uc.metrics.IncBookingConflict("approve")
		return ErrSlotNoLongerAvailable
	case errors.Is(err, ErrInternal):
		uc.logger.Error("ReviewBooking: booking id=%s: %v", req.BookingID, err)
		return err
	default:
		uc.logger.Error("ReviewBooking: booking id=%s: %v", req.BookingID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// serviceName название услуги для письма; ошибка чтения не мешает отправке
func (uc *UseCase) serviceName(ctx context.Context, id uuid.UUID) string {
	service, err := uc.serviceRepo.GetServiceByID(ctx, id)
	if err != nil {
		uc.logger.Warn("ReviewBooking: failed to get service id=%s for email: %v", id, err)
		return defaultServiceName
	}
	return service.Name
}
