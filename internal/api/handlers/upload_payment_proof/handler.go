package upload_payment_proof

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	uploadPaymentProof "github.com/m04kA/SMC-StudioBooking/internal/usecase/upload_payment_proof"
)

const (
	msgInvalidBookingID    = "invalid booking id"
	msgBookingIDMismatch   = "booking_id does not match the booking in the URL"
	msgInvalidForm         = "expected multipart/form-data with file and reference"
	msgMissingFile         = "file is required"
	msgFileTooLarge        = "file is too large"
	msgUnsupportedFileType = "only PDF, JPG and PNG files are accepted"
	msgNotFound            = "booking not found"
	msgInvalidStatus       = "this booking no longer accepts payment proofs"
	msgUploadFailed        = "failed to store the file, please try again"
)

// multipartOverhead запас на служебные поля формы сверх размера файла
const multipartOverhead = 1 << 20

// sniffLen сколько байт читается для определения типа файла
const sniffLen = 512

type Handler struct {
	useCase UploadPaymentProofUseCase
	logger  Logger
}

func NewHandler(useCase UploadPaymentProofUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payment-proof
// Form fields: file (required), reference (required), booking_id (optional, must match URL)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathUUID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payment-proof - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	maxSize := h.useCase.MaxSizeBytes()
	if r.ContentLength > maxSize+multipartOverhead {
		h.logger.Warn("POST /bookings/{id}/payment-proof - Body too large: booking_id=%s, length=%d", bookingID, r.ContentLength)
		handlers.RespondTooLarge(w, msgFileTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(maxSize + multipartOverhead); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.logger.Warn("POST /bookings/{id}/payment-proof - Body too large: booking_id=%s", bookingID)
			handlers.RespondTooLarge(w, msgFileTooLarge)
			return
		}
		h.logger.Warn("POST /bookings/{id}/payment-proof - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	if formID := r.FormValue(formFieldBookingID); formID != "" {
		if parsed, err := uuid.Parse(formID); err != nil || parsed != bookingID {
			h.logger.Warn("POST /bookings/{id}/payment-proof - booking_id mismatch: url=%s, form=%s", bookingID, formID)
			handlers.RespondBadRequest(w, msgBookingIDMismatch)
			return
		}
	}

	file, header, err := r.FormFile(formFieldFile)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payment-proof - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType, err = sniffContentType(file)
		if err != nil {
			h.logger.Warn("POST /bookings/{id}/payment-proof - Failed to read file: %v", err)
			handlers.RespondBadRequest(w, msgInvalidForm)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &uploadPaymentProof.Request{
		BookingID:   bookingID,
		Reference:   r.FormValue(formFieldReference),
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		File:        file,
	})
	if err != nil {
		switch {
		case errors.Is(err, uploadPaymentProof.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/payment-proof - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, uploadPaymentProof.ErrUnsupportedFileType):
			handlers.RespondUnsupportedMediaType(w, msgUnsupportedFileType)

		case errors.Is(err, uploadPaymentProof.ErrFileTooLarge):
			handlers.RespondTooLarge(w, msgFileTooLarge)

		case errors.Is(err, uploadPaymentProof.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payment-proof - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, uploadPaymentProof.ErrInvalidStatus):
			h.logger.Warn("POST /bookings/{id}/payment-proof - Invalid status: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgInvalidStatus)

		case errors.Is(err, uploadPaymentProof.ErrUploadFailed):
			h.logger.Error("POST /bookings/{id}/payment-proof - Upload failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadGateway(w, msgUploadFailed)

		default:
			h.logger.Error("POST /bookings/{id}/payment-proof - Failed to save proof: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payment-proof - Proof uploaded: booking_id=%s, proof_id=%s", bookingID, result.ProofID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// sniffContentType определяет тип по первым байтам и возвращает позицию чтения в начало
func sniffContentType(file io.ReadSeeker) (string, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
