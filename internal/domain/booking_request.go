package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle status of a booking request
type BookingStatus string

const (
	StatusRequested   BookingStatus = "requested"
	StatusPOPUploaded BookingStatus = "pop_uploaded"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusRejected    BookingStatus = "rejected"
	StatusCancelled   BookingStatus = "cancelled"
)

// PaymentChoice is what the customer chose to pay upfront
type PaymentChoice string

const (
	PaymentDeposit PaymentChoice = "DEPOSIT"
	PaymentFull    PaymentChoice = "FULL"
)

// BookingRequest represents a customer's request for an appointment
type BookingRequest struct {
	ID              uuid.UUID
	CustomerName    string
	Email           string
	Phone           string
	ServiceID       uuid.UUID
	HairOptionID    *uuid.UUID
	StartTime       time.Time
	EndTime         time.Time
	PaymentChoice   PaymentChoice
	AmountDue       float64
	JuicePreference *string
	Status          BookingStatus
	Reference       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingRequestDetails is a booking request enriched for the admin console
type BookingRequestDetails struct {
	BookingRequest
	ServiceName            string
	ServiceDurationMinutes int
	ServiceFullPrice       float64
	HairOptionName         *string
	PaymentProofs          []*PaymentProof
}

// IsPending returns true while the request holds its slot without being confirmed
func (b *BookingRequest) IsPending() bool {
	return b.Status == StatusRequested || b.Status == StatusPOPUploaded
}

// CanBeReviewed returns true if an admin may approve or reject the request
func (b *BookingRequest) CanBeReviewed() bool {
	return b.IsPending()
}

// CanUploadProof returns true if the customer may still upload a proof of payment
func (b *BookingRequest) CanUploadProof() bool {
	return b.IsPending()
}

// CanBeCancelled returns true if the request still occupies (or may occupy) its slot
func (b *BookingRequest) CanBeCancelled() bool {
	return b.IsPending() || b.Status == StatusConfirmed
}

// Range returns the time range the request occupies
func (b *BookingRequest) Range() TimeRange {
	return TimeRange{Start: b.StartTime, End: b.EndTime}
}

// IsValid reports whether s is a known booking status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusRequested, StatusPOPUploaded, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsValid reports whether c is a known payment choice
func (c PaymentChoice) IsValid() bool {
	return c == PaymentDeposit || c == PaymentFull
}

// BookingRequestsFilter filter for listing booking requests
type BookingRequestsFilter struct {
	Status *BookingStatus // nil - all statuses
}
