package review_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	notificationModels "github.com/m04kA/SMC-StudioBooking/internal/service/notifications/models"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
}

// ConfirmedBookingRepository интерфейс репозитория подтверждённых бронирований
type ConfirmedBookingRepository interface {
	HasOverlap(ctx context.Context, r domain.TimeRange) (bool, error)
	Create(ctx context.Context, c *domain.ConfirmedBooking) (*domain.ConfirmedBooking, error)
}

// ProofRepository интерфейс репозитория чеков
type ProofRepository interface {
	UpdateVerificationByBookingRequest(ctx context.Context, bookingRequestID uuid.UUID, status domain.VerificationStatus, note *string) (int64, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправка писем клиенту
type Notifier interface {
	SendBookingConfirmed(email notificationModels.BookingEmail)
	SendBookingRejected(email, customerName string, reason *string)
}

// Metrics метрики конфликтов бронирования
type Metrics interface {
	IncBookingConflict(stage string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
