package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrHairOptionNotFound возвращается, когда опция не найдена
	ErrHairOptionNotFound = errors.New("catalog.repository: hair option not found")

	// ErrServiceInUse возвращается при удалении услуги, на которую ссылаются заявки
	ErrServiceInUse = errors.New("catalog.repository: service is referenced by booking requests")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
