package delete_hair_option

import (
	"context"

	"github.com/google/uuid"
)

type CatalogService interface {
	DeleteHairOption(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
