package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date            time.Time  // Календарный день (время не учитывается)
	DurationMinutes *int       // Длительность услуги, nil - по умолчанию
	ServiceID       *uuid.UUID // Если указан, длительность берётся из услуги
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time     // Полночь запрошенного дня в часовом поясе студии
	DurationMinutes int           // Длительность, для которой считались слоты
	Closed          bool          // Студия не работает в этот день
	Slots           []domain.Slot // Свободные слоты по возрастанию начала
}
