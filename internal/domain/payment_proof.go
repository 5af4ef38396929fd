package domain

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus is the admin's verdict on an uploaded proof of payment
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationApproved VerificationStatus = "APPROVED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// PaymentProof is a file uploaded by the customer as proof of payment (POP)
type PaymentProof struct {
	ID                 uuid.UUID
	BookingRequestID   uuid.UUID
	FileURL            string
	ReferenceUsed      string
	VerificationStatus VerificationStatus
	ReviewNote         *string
	UploadedAt         time.Time
}
