package confirmed

import "errors"

var (
	// ErrSlotTaken возвращается, когда интервал пересекается с уже подтверждённым бронированием
	// (срабатывание exclusion constraint или повторное подтверждение той же заявки)
	ErrSlotTaken = errors.New("confirmed.repository: slot is already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("confirmed.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("confirmed.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("confirmed.repository: failed to scan row")
)
