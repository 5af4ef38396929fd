package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Default configuration values
const (
	DefaultDurationMinutes     = 60
	DefaultOpenHour            = 8
	DefaultCloseHour           = 18
	DefaultSlotIntervalMinutes = 30
	DefaultDepositValue        = 50
	DefaultReferencePrefix     = "SHEDIDTHAT"
	DefaultMaxProofSizeMB      = 10
)

// Business validation constants
const (
	MaxCustomerNameLength = 200
	MaxPhoneLength        = 32
	MaxReviewNoteLength   = 500
	MaxServiceNameLength  = 200
	MaxDurationMinutes    = 24 * 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AcceptedProofContentTypes content types accepted for proof of payment uploads
var AcceptedProofContentTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
}

// PendingStatuses statuses of requests that hold a slot without being confirmed
// Used when building the pending ranges for availability
var PendingStatuses = []BookingStatus{
	StatusRequested,
	StatusPOPUploaded,
}

// GenerateReference builds the payment reference for a booking request, e.g. SHEDIDTHAT-1A2B3C4D
func GenerateReference(prefix string, id uuid.UUID) string {
	short := strings.ReplaceAll(id.String(), "-", "")[:8]
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(short))
}
