package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrHairOptionNotFound возвращается, когда опция волос не найдена
	ErrHairOptionNotFound = errors.New("hair option not found")

	// ErrServiceInUse возвращается при удалении услуги, на которую ссылаются заявки
	ErrServiceInUse = errors.New("service has booking requests")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
