package notifications

import "errors"

var (
	// ErrRenderTemplate возвращается при ошибке рендеринга шаблона письма
	ErrRenderTemplate = errors.New("notifications: failed to render template")

	// ErrUnknownTemplate возвращается для неизвестного вида письма
	ErrUnknownTemplate = errors.New("notifications: unknown template")
)
