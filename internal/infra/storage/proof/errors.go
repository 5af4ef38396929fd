package proof

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка для чека не существует
	ErrBookingNotFound = errors.New("proof.repository: booking request not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("proof.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("proof.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("proof.repository: failed to scan row")
)
