package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingRequest, error)
	ListWithDetails(ctx context.Context, filter domain.BookingRequestsFilter) ([]*domain.BookingRequestDetails, error)
}

// ProofRepository интерфейс репозитория чеков об оплате
type ProofRepository interface {
	ListByBookingRequestIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]*domain.PaymentProof, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
