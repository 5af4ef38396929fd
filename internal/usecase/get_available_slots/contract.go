package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// BookingRequestRepository интерфейс репозитория заявок
type BookingRequestRepository interface {
	// GetPendingRanges возвращает интервалы заявок в статусах requested/pop_uploaded, начинающихся в [from, to)
	GetPendingRanges(ctx context.Context, from, to time.Time) ([]domain.TimeRange, error)
}

// ConfirmedBookingRepository интерфейс репозитория подтверждённых бронирований
type ConfirmedBookingRepository interface {
	// GetRanges возвращает интервалы подтверждённых бронирований, начинающихся в [from, to)
	GetRanges(ctx context.Context, from, to time.Time) ([]domain.TimeRange, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// Metrics метрики use case
type Metrics interface {
	ObserveSlots(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
