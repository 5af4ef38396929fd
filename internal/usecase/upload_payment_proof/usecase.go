package upload_payment_proof

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
)

// UseCase use case для загрузки чека об оплате
type UseCase struct {
	bookingRepo  BookingRepository
	proofRepo    ProofRepository
	storage      FileStorage
	txManager    TransactionManager
	notifier     Notifier
	maxSizeBytes int64
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// maxSizeMB ограничивает размер файла, 0 - значение по умолчанию
func NewUseCase(
	bookingRepo BookingRepository,
	proofRepo ProofRepository,
	storage FileStorage,
	txManager TransactionManager,
	notifier Notifier,
	maxSizeMB int,
	logger Logger,
) *UseCase {
	if maxSizeMB <= 0 {
		maxSizeMB = domain.DefaultMaxProofSizeMB
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		proofRepo:    proofRepo,
		storage:      storage,
		txManager:    txManager,
		notifier:     notifier,
		maxSizeBytes: int64(maxSizeMB) * 1024 * 1024,
		logger:       logger,
	}
}

// MaxSizeBytes максимальный размер файла в байтах
func (uc *UseCase) MaxSizeBytes() int64 {
	return uc.maxSizeBytes
}

// Execute выполняет use case загрузки чека
// Файл загружается до транзакции, чтобы не держать блокировку на время сетевого запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxSizeBytes); err != nil {
		uc.logger.Warn("UploadPaymentProof: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UploadPaymentProof: booking=%s, file=%s, type=%s, size=%d",
		req.BookingID, req.FileName, req.ContentType, req.Size)

	// 2. Проверяем заявку до загрузки файла
	booking, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanUploadProof() {
		uc.logger.Warn("UploadPaymentProof: booking id=%s has status=%s", booking.ID, booking.Status)
		return nil, ErrInvalidStatus
	}

	if req.Reference != booking.Reference {
		uc.logger.Warn("UploadPaymentProof: booking id=%s reference mismatch: got %s, expected %s",
			booking.ID, req.Reference, booking.Reference)
	}

	// 3. Загружаем файл в хранилище
	fileURL, err := uc.storage.UploadProof(ctx, booking.ID.String(), req.FileName, req.File)
	if err != nil {
		uc.logger.Error("UploadPaymentProof: upload failed for booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	// 4. Сохраняем чек и переводим заявку в pop_uploaded
	var proof *domain.PaymentProof
	var status domain.BookingStatus

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		locked, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		if !locked.CanUploadProof() {
			uc.logger.Warn("UploadPaymentProof: booking id=%s changed status to %s during upload", locked.ID, locked.Status)
			return ErrInvalidStatus
		}

		created, err := uc.proofRepo.Create(txCtx, &domain.PaymentProof{
			ID:                 uuid.New(),
			BookingRequestID:   locked.ID,
			FileURL:            fileURL,
			ReferenceUsed:      req.Reference,
			VerificationStatus: domain.VerificationPending,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to save payment proof: %v", ErrInternal, err)
		}

		status = locked.Status
		if locked.Status == domain.StatusRequested {
			if err := uc.bookingRepo.UpdateStatus(txCtx, locked.ID, domain.StatusPOPUploaded); err != nil {
				return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
			}
			status = domain.StatusPOPUploaded
		}

		proof = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInvalidStatus) || errors.Is(err, ErrBookingNotFound) {
			return nil, err
		}
		uc.logger.Error("UploadPaymentProof: transaction failed for booking id=%s: %v", req.BookingID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("UploadPaymentProof: proof id=%s stored for booking id=%s", proof.ID, booking.ID)

	// 5. Уведомляем клиента
	uc.notifier.SendPOPReceived(booking.Email, booking.CustomerName)

	return &Response{
		ProofID:       proof.ID,
		BookingID:     booking.ID,
		BookingStatus: string(status),
		FileURL:       proof.FileURL,
		UploadedAt:    proof.UploadedAt,
	}, nil
}

func (uc *UseCase) getBooking(ctx context.Context, id uuid.UUID) (*domain.BookingRequest, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UploadPaymentProof: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UploadPaymentProof: failed to get booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}
