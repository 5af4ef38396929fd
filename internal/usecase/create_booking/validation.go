package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name must not exceed %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must not exceed %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.HairOptionID != nil && *req.HairOptionID == uuid.Nil {
		req.HairOptionID = nil
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if !domain.PaymentChoice(req.PaymentChoice).IsValid() {
		return fmt.Errorf("%w: paymentChoice must be DEPOSIT or FULL", ErrInvalidInput)
	}

	if req.JuicePreference != nil {
		juice := strings.TrimSpace(*req.JuicePreference)
		if juice == "" {
			req.JuicePreference = nil
		} else {
			req.JuicePreference = &juice
		}
	}

	return nil
}

// validateTiming проверяет, что запись в будущем, в пределах горизонта и в рабочие часы
func validateTiming(r domain.TimeRange, hours domain.BusinessHours, now time.Time, maxAdvanceDays int) error {
	if r.Start.Before(now) {
		return ErrStartInPast
	}

	if maxAdvanceDays > 0 {
		limit := hours.Midnight(hours.In(now)).AddDate(0, 0, maxAdvanceDays+1)
		if !r.Start.Before(limit) {
			return fmt.Errorf("%w: can only book %d days in advance", ErrTooFarInFuture, maxAdvanceDays)
		}
	}

	local := hours.In(r.Start)
	if hours.IsClosed(local) {
		return ErrStudioClosed
	}

	if !hours.Contains(r) {
		return ErrOutsideBusinessHours
	}

	return nil
}

// overlapsAny проверяет пересечение интервала с любым из занятых
func overlapsAny(r domain.TimeRange, taken []domain.TimeRange) bool {
	for _, t := range taken {
		if r.Overlaps(t) {
			return true
		}
	}
	return false
}
