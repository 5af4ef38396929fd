package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DepositType defines how the deposit for a service is computed
type DepositType string

const (
	DepositPercentage DepositType = "PERCENTAGE"
	DepositFixed      DepositType = "FIXED"
)

// IsValid reports whether d is a known deposit type
func (d DepositType) IsValid() bool {
	return d == DepositPercentage || d == DepositFixed
}

// Service is a bookable studio service (e.g. knotless braids)
type Service struct {
	ID              uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	FullPrice       float64
	DepositType     DepositType
	DepositValue    float64
	HasHairOptions  bool
	ImageURL        *string
	CreatedAt       time.Time
}

// HairOption is an add-on for a service that changes its price
type HairOption struct {
	ID         uuid.UUID
	ServiceID  uuid.UUID
	Name       string
	PriceDelta float64
}

// CalculateAmountDue returns what the customer has to pay upfront
// Percentage deposits are rounded up to a whole currency unit
func (s *Service) CalculateAmountDue(hairPriceDelta float64, choice PaymentChoice) float64 {
	total := s.FullPrice + hairPriceDelta
	if choice == PaymentFull {
		return total
	}
	if s.DepositType == DepositPercentage {
		return math.Ceil(total * s.DepositValue / 100)
	}
	return s.DepositValue
}

// ServiceUpdate holds the fields of a partial service update; nil fields are left untouched
type ServiceUpdate struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	FullPrice       *float64
	DepositType     *DepositType
	DepositValue    *float64
	HasHairOptions  *bool
	ImageURL        *string
}

// IsEmpty reports whether the update changes nothing
func (u ServiceUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.DurationMinutes == nil &&
		u.FullPrice == nil && u.DepositType == nil && u.DepositValue == nil &&
		u.HasHairOptions == nil && u.ImageURL == nil
}

// HairOptionUpdate holds the fields of a partial hair option update
type HairOptionUpdate struct {
	Name       *string
	PriceDelta *float64
}

// IsEmpty reports whether the update changes nothing
func (u HairOptionUpdate) IsEmpty() bool {
	return u.Name == nil && u.PriceDelta == nil
}
