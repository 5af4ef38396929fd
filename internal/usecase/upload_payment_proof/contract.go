package upload_payment_proof

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
}

// ProofRepository интерфейс репозитория чеков
type ProofRepository interface {
	Create(ctx context.Context, proof *domain.PaymentProof) (*domain.PaymentProof, error)
}

// FileStorage хранилище файлов чеков
type FileStorage interface {
	UploadProof(ctx context.Context, bookingID string, fileName string, file io.Reader) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправка писем клиенту
type Notifier interface {
	SendPOPReceived(email, customerName string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
