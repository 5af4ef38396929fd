package create_booking

import (
	"time"

	"github.com/google/uuid"

	createBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName    string     `json:"customerName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	ServiceID       uuid.UUID  `json:"serviceId"`
	HairOptionID    *uuid.UUID `json:"hairOptionId,omitempty"`
	StartTime       string     `json:"startTime"`     // RFC 3339, например "2026-03-10T10:00:00+02:00"
	PaymentChoice   string     `json:"paymentChoice"` // DEPOSIT или FULL
	JuicePreference *string    `json:"juicePreference,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	ServiceName   string    `json:"serviceName"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	PaymentChoice string    `json:"paymentChoice"`
	AmountDue     float64   `json:"amountDue"`
	CreatedAt     string    `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:    r.CustomerName,
		Email:           r.Email,
		Phone:           r.Phone,
		ServiceID:       r.ServiceID,
		HairOptionID:    r.HairOptionID,
		StartTime:       startTime,
		PaymentChoice:   r.PaymentChoice,
		JuicePreference: r.JuicePreference,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		Status:        resp.Status,
		ServiceName:   resp.ServiceName,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		PaymentChoice: resp.PaymentChoice,
		AmountDue:     resp.AmountDue,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
