package review_booking

import (
	"context"

	reviewBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/review_booking"
)

type ReviewBookingUseCase interface {
	Execute(ctx context.Context, req *reviewBooking.Request) (*reviewBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
