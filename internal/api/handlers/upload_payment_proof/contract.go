package upload_payment_proof

import (
	"context"

	uploadPaymentProof "github.com/m04kA/SMC-StudioBooking/internal/usecase/upload_payment_proof"
)

type UploadPaymentProofUseCase interface {
	Execute(ctx context.Context, req *uploadPaymentProof.Request) (*uploadPaymentProof.Response, error)
	MaxSizeBytes() int64
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
