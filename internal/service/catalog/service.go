package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
)

// Service сервис для работы с каталогом услуг и опций волос
type Service struct {
	repo      CatalogRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// ListServices возвращает все услуги
// Публичный метод - используется и на сайте, и в админке
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// CreateService создает услугу
// Тип депозита по умолчанию PERCENTAGE, размер 50
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	service := req.ToDomainService(uuid.New())

	if err := validateService(service.Name, service.DurationMinutes, service.FullPrice, service.DepositType, service.DepositValue); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.CreateService(ctx, service)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%s name=%q", created.ID, created.Name)
	return models.FromDomainService(created), nil
}

// UpdateService частично обновляет услугу
// Итоговая комбинация типа и размера депозита проверяется целиком
func (s *Service) UpdateService(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	upd := req.ToDomainUpdate()
	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		upd.Name = &trimmed
	}

	if err := validateServiceUpdate(upd); err != nil {
		s.logger.Warn("UpdateService: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	var updated *domain.Service
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetServiceByID(txCtx, id)
		if err != nil {
			return err
		}

		merged := *current
		applyServiceUpdate(&merged, upd)
		if err := validateService(merged.Name, merged.DurationMinutes, merged.FullPrice, merged.DepositType, merged.DepositValue); err != nil {
			return err
		}

		if upd.IsEmpty() {
			updated = current
			return nil
		}

		updated, err = s.repo.UpdateService(txCtx, id, upd)
		return err
	})

	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrServiceNotFound):
			s.logger.Warn("UpdateService: service id=%s not found", id)
			return nil, ErrServiceNotFound
		case errors.Is(err, ErrInvalidInput):
			s.logger.Warn("UpdateService: validation failed for id=%s: %v", id, err)
			return nil, err
		default:
			s.logger.Error("UpdateService: repository error for id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateService: updated service id=%s", id)
	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу вместе с её опциями волос
func (s *Service) DeleteService(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteService(txCtx, id)
	})

	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrServiceNotFound):
			s.logger.Warn("DeleteService: service id=%s not found", id)
			return ErrServiceNotFound
		case errors.Is(err, catalogRepo.ErrServiceInUse):
			s.logger.Warn("DeleteService: service id=%s has booking requests", id)
			return ErrServiceInUse
		default:
			s.logger.Error("DeleteService: repository error for id=%s: %v", id, err)
			return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("DeleteService: deleted service id=%s", id)
	return nil
}

// ListHairOptions возвращает опции волос, опционально только для одной услуги
func (s *Service) ListHairOptions(ctx context.Context, serviceID *uuid.UUID) (*models.HairOptionListResponse, error) {
	options, err := s.repo.ListHairOptions(ctx, serviceID)
	if err != nil {
		s.logger.Error("ListHairOptions: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHairOptions - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHairOptionList(options), nil
}

// CreateHairOption создает опцию волос; надбавка по умолчанию 0
func (s *Service) CreateHairOption(ctx context.Context, req *models.CreateHairOptionRequest) (*models.HairOptionResponse, error) {
	req.Name = strings.TrimSpace(req.Name)

	if req.ServiceID == uuid.Nil {
		return nil, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := validateHairOption(&req.Name, req.PriceDelta); err != nil {
		s.logger.Warn("CreateHairOption: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.CreateHairOption(ctx, req.ToDomainHairOption(uuid.New()))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("CreateHairOption: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("CreateHairOption: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateHairOption - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateHairOption: created hair option id=%s for service id=%s", created.ID, created.ServiceID)
	return models.FromDomainHairOption(created), nil
}

// UpdateHairOption частично обновляет опцию волос
func (s *Service) UpdateHairOption(ctx context.Context, id uuid.UUID, req *models.UpdateHairOptionRequest) (*models.HairOptionResponse, error) {
	upd := req.ToDomainUpdate()
	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		upd.Name = &trimmed
	}

	if err := validateHairOption(upd.Name, upd.PriceDelta); err != nil {
		s.logger.Warn("UpdateHairOption: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.repo.UpdateHairOption(ctx, id, upd)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrHairOptionNotFound) {
			s.logger.Warn("UpdateHairOption: hair option id=%s not found", id)
			return nil, ErrHairOptionNotFound
		}
		s.logger.Error("UpdateHairOption: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateHairOption - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateHairOption: updated hair option id=%s", id)
	return models.FromDomainHairOption(updated), nil
}

// DeleteHairOption удаляет опцию волос
func (s *Service) DeleteHairOption(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteHairOption(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrHairOptionNotFound) {
			s.logger.Warn("DeleteHairOption: hair option id=%s not found", id)
			return ErrHairOptionNotFound
		}
		s.logger.Error("DeleteHairOption: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteHairOption - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteHairOption: deleted hair option id=%s", id)
	return nil
}

func applyServiceUpdate(s *domain.Service, upd domain.ServiceUpdate) {
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.DurationMinutes != nil {
		s.DurationMinutes = *upd.DurationMinutes
	}
	if upd.FullPrice != nil {
		s.FullPrice = *upd.FullPrice
	}
	if upd.DepositType != nil {
		s.DepositType = *upd.DepositType
	}
	if upd.DepositValue != nil {
		s.DepositValue = *upd.DepositValue
	}
	if upd.HasHairOptions != nil {
		s.HasHairOptions = *upd.HasHairOptions
	}
	if upd.ImageURL != nil {
		s.ImageURL = upd.ImageURL
	}
}
