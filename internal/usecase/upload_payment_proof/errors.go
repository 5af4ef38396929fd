package upload_payment_proof

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("upload_payment_proof: invalid input data")

	// ErrUnsupportedFileType возвращается для файлов не PDF/JPEG/PNG
	ErrUnsupportedFileType = errors.New("upload_payment_proof: unsupported file type")

	// ErrFileTooLarge возвращается при превышении допустимого размера
	ErrFileTooLarge = errors.New("upload_payment_proof: file too large")

	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("upload_payment_proof: booking request not found")

	// ErrInvalidStatus возвращается, если заявка уже не ожидает оплаты
	ErrInvalidStatus = errors.New("upload_payment_proof: booking request does not accept payment proofs")

	// ErrUploadFailed возвращается, если файл не удалось сохранить в хранилище
	ErrUploadFailed = errors.New("upload_payment_proof: failed to store file")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("upload_payment_proof: internal error")
)
