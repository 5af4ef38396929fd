package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// CatalogRepository интерфейс репозитория услуг и опций волос
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, id uuid.UUID, upd domain.ServiceUpdate) (*domain.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	ListHairOptions(ctx context.Context, serviceID *uuid.UUID) ([]*domain.HairOption, error)
	CreateHairOption(ctx context.Context, o *domain.HairOption) (*domain.HairOption, error)
	UpdateHairOption(ctx context.Context, id uuid.UUID, upd domain.HairOptionUpdate) (*domain.HairOption, error)
	DeleteHairOption(ctx context.Context, id uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
