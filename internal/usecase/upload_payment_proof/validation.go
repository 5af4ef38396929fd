package upload_payment_proof

import (
	"fmt"
	"mime"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxSizeBytes int64) error {
	if req.BookingID == uuid.Nil {
		return fmt.Errorf("%w: booking_id is required", ErrInvalidInput)
	}

	req.Reference = strings.TrimSpace(req.Reference)
	if req.Reference == "" {
		return fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	if req.File == nil {
		return fmt.Errorf("%w: file is required", ErrInvalidInput)
	}

	if !isAcceptedContentType(req.ContentType) {
		return fmt.Errorf("%w: %q, accepted: PDF, JPG, PNG", ErrUnsupportedFileType, req.ContentType)
	}

	if req.Size <= 0 {
		return fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	if req.Size > maxSizeBytes {
		return fmt.Errorf("%w: max %dMB", ErrFileTooLarge, maxSizeBytes/(1024*1024))
	}

	return nil
}

func isAcceptedContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	for _, accepted := range domain.AcceptedProofContentTypes {
		if mediaType == accepted {
			return true
		}
	}
	return false
}
