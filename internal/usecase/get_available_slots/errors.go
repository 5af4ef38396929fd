package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrStoreUnavailable возвращается, когда не удалось прочитать бронирования (можно повторить запрос)
	ErrStoreUnavailable = errors.New("get_available_slots: booking store unavailable")
)
