package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	notificationModels "github.com/m04kA/SMC-StudioBooking/internal/service/notifications/models"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.BookingRequest) (*domain.BookingRequest, error)
	GetPendingRanges(ctx context.Context, from, to time.Time) ([]domain.TimeRange, error)
}

// ConfirmedBookingRepository интерфейс репозитория подтверждённых бронирований
type ConfirmedBookingRepository interface {
	GetRanges(ctx context.Context, from, to time.Time) ([]domain.TimeRange, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	GetHairOptionByID(ctx context.Context, id uuid.UUID) (*domain.HairOption, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправка писем клиенту
type Notifier interface {
	SendPaymentInstructions(email notificationModels.BookingEmail)
}

// Metrics метрики конфликтов бронирования
type Metrics interface {
	IncBookingConflict(stage string)
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
