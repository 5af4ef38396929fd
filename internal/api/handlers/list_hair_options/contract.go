package list_hair_options

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
)

type CatalogService interface {
	ListHairOptions(ctx context.Context, serviceID *uuid.UUID) (*models.HairOptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
