package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrHairOptionNotFound возвращается, когда опция не найдена или не относится к услуге
	ErrHairOptionNotFound = errors.New("create_booking: hair option not found for service")

	// ErrStartInPast возвращается при попытке записаться на прошедшее время
	ErrStartInPast = errors.New("create_booking: start time is in the past")

	// ErrTooFarInFuture возвращается, если дата дальше допустимого горизонта записи
	ErrTooFarInFuture = errors.New("create_booking: start time is too far in the future")

	// ErrStudioClosed возвращается, если студия не работает в этот день
	ErrStudioClosed = errors.New("create_booking: studio is closed on this day")

	// ErrOutsideBusinessHours возвращается, если запись выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("create_booking: outside business hours")

	// ErrSlotNotAvailable возвращается, если время пересекается с другой записью
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_booking: internal error")
)
