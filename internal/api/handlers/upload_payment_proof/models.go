package upload_payment_proof

import (
	"time"

	"github.com/google/uuid"

	uploadPaymentProof "github.com/m04kA/SMC-StudioBooking/internal/usecase/upload_payment_proof"
)

// Поля multipart формы
const (
	formFieldFile      = "file"
	formFieldReference = "reference"
	formFieldBookingID = "booking_id"
)

// UploadPaymentProofResponse HTTP response model
type UploadPaymentProofResponse struct {
	ProofID       uuid.UUID `json:"proofId"`
	BookingID     uuid.UUID `json:"bookingId"`
	BookingStatus string    `json:"bookingStatus"`
	FileURL       string    `json:"fileUrl"`
	UploadedAt    string    `json:"uploadedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *uploadPaymentProof.Response) *UploadPaymentProofResponse {
	return &UploadPaymentProofResponse{
		ProofID:       resp.ProofID,
		BookingID:     resp.BookingID,
		BookingStatus: resp.BookingStatus,
		FileURL:       resp.FileURL,
		UploadedAt:    resp.UploadedAt.Format(time.RFC3339),
	}
}
