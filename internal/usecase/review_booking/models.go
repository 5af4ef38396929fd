package review_booking

import (
	"github.com/google/uuid"
)

// Действия администратора над заявкой
const (
	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
)

// Request модель запроса на проверку заявки
type Request struct {
	BookingID uuid.UUID
	Action    string  // APPROVE или REJECT
	Note      *string // Комментарий к проверке, для REJECT отправляется клиенту как причина
}

// Response модель ответа с итоговым статусом заявки
type Response struct {
	BookingID uuid.UUID
	Status    string
}
