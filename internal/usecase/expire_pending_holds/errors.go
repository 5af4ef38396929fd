package expire_pending_holds

import "errors"

var (
	// ErrDisabled возвращается, если окно удержания не задано
	ErrDisabled = errors.New("expire_pending_holds: hold expiry is disabled")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("expire_pending_holds: internal error")
)
