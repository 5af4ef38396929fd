package create_hair_option

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
)

type CatalogService interface {
	CreateHairOption(ctx context.Context, req *models.CreateHairOptionRequest) (*models.HairOptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
