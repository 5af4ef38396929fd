package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание заявки
type Request struct {
	CustomerName    string
	Email           string
	Phone           string
	ServiceID       uuid.UUID
	HairOptionID    *uuid.UUID // Опция волос (опционально)
	StartTime       time.Time  // Начало записи, конец считается по длительности услуги
	PaymentChoice   string     // DEPOSIT или FULL
	JuicePreference *string    // Пожелание по напитку (опционально)
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID            uuid.UUID
	Reference     string // Референс для платежа
	Status        string
	ServiceName   string
	StartTime     time.Time
	EndTime       time.Time
	PaymentChoice string
	AmountDue     float64
	CreatedAt     time.Time
}

// Settings параметры бронирования
type Settings struct {
	ReferencePrefix string // Префикс платёжного референса
	MaxAdvanceDays  int    // На сколько дней вперёд можно записаться, 0 - без ограничений
}
