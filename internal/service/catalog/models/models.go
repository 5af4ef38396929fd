package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"durationMinutes"`
	FullPrice       float64  `json:"fullPrice"`
	DepositType     *string  `json:"depositType,omitempty"`  // По умолчанию PERCENTAGE
	DepositValue    *float64 `json:"depositValue,omitempty"` // По умолчанию 50
	HasHairOptions  bool     `json:"hasHairOptions"`
	ImageURL        *string  `json:"imageUrl,omitempty"`
}

// UpdateServiceRequest запрос на обновление услуги
// Все поля опциональны - обновляются только переданные значения
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	FullPrice       *float64 `json:"fullPrice,omitempty"`
	DepositType     *string  `json:"depositType,omitempty"`
	DepositValue    *float64 `json:"depositValue,omitempty"`
	HasHairOptions  *bool    `json:"hasHairOptions,omitempty"`
	ImageURL        *string  `json:"imageUrl,omitempty"`
}

// CreateHairOptionRequest запрос на создание опции волос
type CreateHairOptionRequest struct {
	ServiceID  uuid.UUID `json:"serviceId"`
	Name       string    `json:"name"`
	PriceDelta *float64  `json:"priceDelta,omitempty"` // По умолчанию 0
}

// UpdateHairOptionRequest запрос на обновление опции волос
type UpdateHairOptionRequest struct {
	Name       *string  `json:"name,omitempty"`
	PriceDelta *float64 `json:"priceDelta,omitempty"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	FullPrice       float64   `json:"fullPrice"`
	DepositType     string    `json:"depositType"`
	DepositValue    float64   `json:"depositValue"`
	HasHairOptions  bool      `json:"hasHairOptions"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
}

// HairOptionResponse ответ с данными опции волос
type HairOptionResponse struct {
	ID         uuid.UUID `json:"id"`
	ServiceID  uuid.UUID `json:"serviceId"`
	Name       string    `json:"name"`
	PriceDelta float64   `json:"priceDelta"`
}

// HairOptionListResponse список опций волос
type HairOptionListResponse struct {
	HairOptions []*HairOptionResponse `json:"hairOptions"`
}

// Функции конвертации

// ToDomainService конвертирует запрос в доменную услугу, подставляя значения по умолчанию
func (r *CreateServiceRequest) ToDomainService(id uuid.UUID) *domain.Service {
	depositType := domain.DepositPercentage
	if r.DepositType != nil && *r.DepositType != "" {
		depositType = domain.DepositType(*r.DepositType)
	}

	depositValue := float64(domain.DefaultDepositValue)
	if r.DepositValue != nil {
		depositValue = *r.DepositValue
	}

	return &domain.Service{
		ID:              id,
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		FullPrice:       r.FullPrice,
		DepositType:     depositType,
		DepositValue:    depositValue,
		HasHairOptions:  r.HasHairOptions,
		ImageURL:        r.ImageURL,
	}
}

// ToDomainUpdate конвертирует запрос в частичное обновление
func (r *UpdateServiceRequest) ToDomainUpdate() domain.ServiceUpdate {
	upd := domain.ServiceUpdate{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		FullPrice:       r.FullPrice,
		DepositValue:    r.DepositValue,
		HasHairOptions:  r.HasHairOptions,
		ImageURL:        r.ImageURL,
	}
	if r.DepositType != nil {
		dt := domain.DepositType(*r.DepositType)
		upd.DepositType = &dt
	}
	return upd
}

// ToDomainHairOption конвертирует запрос в доменную опцию волос
func (r *CreateHairOptionRequest) ToDomainHairOption(id uuid.UUID) *domain.HairOption {
	var delta float64
	if r.PriceDelta != nil {
		delta = *r.PriceDelta
	}
	return &domain.HairOption{
		ID:         id,
		ServiceID:  r.ServiceID,
		Name:       r.Name,
		PriceDelta: delta,
	}
}

// ToDomainUpdate конвертирует запрос в частичное обновление
func (r *UpdateHairOptionRequest) ToDomainUpdate() domain.HairOptionUpdate {
	return domain.HairOptionUpdate{Name: r.Name, PriceDelta: r.PriceDelta}
}

// FromDomainService конвертирует доменную услугу в ответ
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		FullPrice:       s.FullPrice,
		DepositType:     string(s.DepositType),
		DepositValue:    s.DepositValue,
		HasHairOptions:  s.HasHairOptions,
		ImageURL:        s.ImageURL,
		CreatedAt:       s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]*ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, FromDomainService(s))
	}
	return resp
}

// FromDomainHairOption конвертирует доменную опцию в ответ
func FromDomainHairOption(o *domain.HairOption) *HairOptionResponse {
	return &HairOptionResponse{
		ID:         o.ID,
		ServiceID:  o.ServiceID,
		Name:       o.Name,
		PriceDelta: o.PriceDelta,
	}
}

// FromDomainHairOptionList конвертирует список опций
func FromDomainHairOptionList(options []*domain.HairOption) *HairOptionListResponse {
	resp := &HairOptionListResponse{HairOptions: make([]*HairOptionResponse, 0, len(options))}
	for _, o := range options {
		resp.HairOptions = append(resp.HairOptions, FromDomainHairOption(o))
	}
	return resp
}
