package notifications

import "context"

// EmailSender транспорт для отправки писем
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) (string, error)
}

// Metrics счётчики отправленных писем
type Metrics interface {
	IncNotification(kind, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
