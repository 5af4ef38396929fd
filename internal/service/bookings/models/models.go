package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// UnknownServiceName подставляется, если услуга была удалена
const UnknownServiceName = "—"

// Request модели

// ListBookingsRequest запрос списка заявок для админки
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingRequestsFilter, error) {
	var filter domain.BookingRequestsFilter
	if r.Status != nil && *r.Status != "" {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	return filter, nil
}

// Response модели

// BookingResponse публичное представление заявки
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	ServiceName   string    `json:"serviceName"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	PaymentChoice string    `json:"paymentChoice"`
	AmountDue     float64   `json:"amountDue"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PaymentProofResponse чек об оплате
type PaymentProofResponse struct {
	ID                 uuid.UUID `json:"id"`
	FileURL            string    `json:"fileUrl"`
	ReferenceUsed      string    `json:"referenceUsed"`
	VerificationStatus string    `json:"verificationStatus"`
	ReviewNote         *string   `json:"reviewNote,omitempty"`
	UploadedAt         time.Time `json:"uploadedAt"`
}

// AdminBookingResponse заявка со всеми деталями для админки
type AdminBookingResponse struct {
	ID              uuid.UUID               `json:"id"`
	Reference       string                  `json:"reference"`
	Status          string                  `json:"status"`
	CustomerName    string                  `json:"customerName"`
	Email           string                  `json:"email"`
	Phone           string                  `json:"phone"`
	ServiceID       uuid.UUID               `json:"serviceId"`
	ServiceName     string                  `json:"serviceName"`
	DurationMinutes int                     `json:"durationMinutes"`
	HairOptionID    *uuid.UUID              `json:"hairOptionId,omitempty"`
	HairOptionName  *string                 `json:"hairOptionName,omitempty"`
	StartTime       time.Time               `json:"startTime"`
	EndTime         time.Time               `json:"endTime"`
	PaymentChoice   string                  `json:"paymentChoice"`
	AmountDue       float64                 `json:"amountDue"`
	JuicePreference *string                 `json:"juicePreference,omitempty"`
	PaymentProofs   []*PaymentProofResponse `json:"paymentProofs"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// AdminBookingListResponse список заявок для админки
type AdminBookingListResponse struct {
	Bookings []*AdminBookingResponse `json:"bookings"`
}

// ClientBookingResponse заявка в карточке клиента
type ClientBookingResponse struct {
	ID              uuid.UUID `json:"id"`
	Service         string    `json:"service"`
	Date            time.Time `json:"date"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	Reference       string    `json:"reference"`
	JuicePreference *string   `json:"juicePreference,omitempty"`
}

// ClientResponse карточка клиента
type ClientResponse struct {
	Email             string                   `json:"email"`
	Name              string                   `json:"name"`
	Phone             string                   `json:"phone"`
	Bookings          []*ClientBookingResponse `json:"bookings"`
	TotalSpent        float64                  `json:"totalSpent"`
	ConfirmedBookings int                      `json:"confirmedBookings"`
	LastBooking       time.Time                `json:"lastBooking"`
}

// ClientStats сводная статистика по клиентам
type ClientStats struct {
	TotalClients      int     `json:"totalClients"`
	TotalBookings     int     `json:"totalBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// ClientListResponse клиентская база
type ClientListResponse struct {
	Clients []*ClientResponse `json:"clients"`
	Stats   ClientStats       `json:"stats"`
}

// Функции конвертации

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainBooking конвертирует заявку в публичный ответ
func FromDomainBooking(b *domain.BookingRequest, serviceName string) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		Status:        string(b.Status),
		ServiceName:   serviceName,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		PaymentChoice: string(b.PaymentChoice),
		AmountDue:     b.AmountDue,
		CreatedAt:     b.CreatedAt,
	}
}

// FromDomainProof конвертирует чек в ответ
func FromDomainProof(p *domain.PaymentProof) *PaymentProofResponse {
	return &PaymentProofResponse{
		ID:                 p.ID,
		FileURL:            p.FileURL,
		ReferenceUsed:      p.ReferenceUsed,
		VerificationStatus: string(p.VerificationStatus),
		ReviewNote:         p.ReviewNote,
		UploadedAt:         p.UploadedAt,
	}
}

// FromDomainDetails конвертирует заявку с деталями в ответ для админки
func FromDomainDetails(d *domain.BookingRequestDetails) *AdminBookingResponse {
	serviceName := d.ServiceName
	if serviceName == "" {
		serviceName = UnknownServiceName
	}

	proofs := make([]*PaymentProofResponse, 0, len(d.PaymentProofs))
	for _, p := range d.PaymentProofs {
		proofs = append(proofs, FromDomainProof(p))
	}

	return &AdminBookingResponse{
		ID:              d.ID,
		Reference:       d.Reference,
		Status:          string(d.Status),
		CustomerName:    d.CustomerName,
		Email:           d.Email,
		Phone:           d.Phone,
		ServiceID:       d.ServiceID,
		ServiceName:     serviceName,
		DurationMinutes: d.ServiceDurationMinutes,
		HairOptionID:    d.HairOptionID,
		HairOptionName:  d.HairOptionName,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		PaymentChoice:   string(d.PaymentChoice),
		AmountDue:       d.AmountDue,
		JuicePreference: d.JuicePreference,
		PaymentProofs:   proofs,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
