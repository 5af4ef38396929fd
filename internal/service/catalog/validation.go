package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

func validateService(name string, durationMinutes int, fullPrice float64, depositType domain.DepositType, depositValue float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if durationMinutes <= 0 || durationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between 1 and %d", ErrInvalidInput, domain.MaxDurationMinutes)
	}
	if fullPrice <= 0 {
		return fmt.Errorf("%w: fullPrice must be positive", ErrInvalidInput)
	}
	if !depositType.IsValid() {
		return fmt.Errorf("%w: depositType must be PERCENTAGE or FIXED", ErrInvalidInput)
	}
	if depositValue < 0 {
		return fmt.Errorf("%w: depositValue cannot be negative", ErrInvalidInput)
	}
	if depositType == domain.DepositPercentage && depositValue > 100 {
		return fmt.Errorf("%w: percentage deposit cannot exceed 100", ErrInvalidInput)
	}
	return nil
}

// validateServiceUpdate проверяет только переданные поля
func validateServiceUpdate(upd domain.ServiceUpdate) error {
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" || len(*upd.Name) > domain.MaxServiceNameLength {
			return fmt.Errorf("%w: invalid name", ErrInvalidInput)
		}
	}
	if upd.DurationMinutes != nil && (*upd.DurationMinutes <= 0 || *upd.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: invalid durationMinutes", ErrInvalidInput)
	}
	if upd.FullPrice != nil && *upd.FullPrice <= 0 {
		return fmt.Errorf("%w: fullPrice must be positive", ErrInvalidInput)
	}
	if upd.DepositType != nil && !upd.DepositType.IsValid() {
		return fmt.Errorf("%w: depositType must be PERCENTAGE or FIXED", ErrInvalidInput)
	}
	if upd.DepositValue != nil && *upd.DepositValue < 0 {
		return fmt.Errorf("%w: depositValue cannot be negative", ErrInvalidInput)
	}
	return nil
}

func validateHairOption(name *string, priceDelta *float64) error {
	if name != nil && (strings.TrimSpace(*name) == "" || len(*name) > domain.MaxServiceNameLength) {
		return fmt.Errorf("%w: invalid name", ErrInvalidInput)
	}
	if priceDelta != nil && *priceDelta < 0 {
		return fmt.Errorf("%w: priceDelta cannot be negative", ErrInvalidInput)
	}
	return nil
}
