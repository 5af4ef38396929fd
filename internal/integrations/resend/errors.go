package resend

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("resend client: internal error")

	// ErrUnauthorized возвращается при неверном или отсутствующем API ключе
	ErrUnauthorized = errors.New("resend client: unauthorized")

	// ErrInvalidEmail возвращается, когда Resend отклонил письмо (422)
	ErrInvalidEmail = errors.New("resend client: email rejected")

	// ErrRateLimited возвращается при превышении лимита запросов
	ErrRateLimited = errors.New("resend client: rate limited")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("resend client: invalid response")
)
