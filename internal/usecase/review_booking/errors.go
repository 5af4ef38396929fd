package review_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("review_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("review_booking: booking request not found")

	// ErrInvalidStatus возвращается, если заявка уже рассмотрена или отменена
	ErrInvalidStatus = errors.New("review_booking: booking request is not pending")

	// ErrSlotNoLongerAvailable возвращается, если время уже занято подтверждённой записью
	ErrSlotNoLongerAvailable = errors.New("review_booking: slot no longer available")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("review_booking: internal error")
)
