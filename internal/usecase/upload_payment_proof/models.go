package upload_payment_proof

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на загрузку чека
type Request struct {
	BookingID   uuid.UUID
	Reference   string // Референс, указанный клиентом в платеже
	FileName    string
	ContentType string
	Size        int64
	File        io.Reader
}

// Response модель ответа с загруженным чеком
type Response struct {
	ProofID       uuid.UUID
	BookingID     uuid.UUID
	BookingStatus string
	FileURL       string
	UploadedAt    time.Time
}
