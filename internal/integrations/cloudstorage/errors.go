package cloudstorage

import "errors"

var (
	// ErrUploadFailed возвращается, когда Cloudinary не принял файл
	ErrUploadFailed = errors.New("cloudstorage: upload failed")

	// ErrInvalidResponse возвращается, если в ответе нет ссылки на файл
	ErrInvalidResponse = errors.New("cloudstorage: invalid response")

	// ErrInvalidCredentials возвращается при пустых или неверных параметрах подключения
	ErrInvalidCredentials = errors.New("cloudstorage: invalid credentials")
)
