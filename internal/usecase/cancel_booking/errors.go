package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("cancel_booking: booking request not found")

	// ErrCannotCancel возвращается для отклонённых и уже отменённых заявок
	ErrCannotCancel = errors.New("cancel_booking: booking request cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("cancel_booking: internal error")
)
