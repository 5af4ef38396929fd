package cancel_booking

import "github.com/google/uuid"

// Request модель запроса на отмену заявки
type Request struct {
	BookingID uuid.UUID
}

// Response модель ответа после отмены
type Response struct {
	BookingID    uuid.UUID
	Status       string
	ReleasedSlot bool // Был освобождён подтверждённый интервал
}
