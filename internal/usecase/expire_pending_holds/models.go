package expire_pending_holds

import "time"

// Response результат одного прохода очистки
type Response struct {
	Cutoff    time.Time // Заявки, созданные раньше, отменены
	Cancelled int64
}
