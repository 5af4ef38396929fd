package list_hair_options

import (
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
)

const (
	msgInvalidServiceID = "invalid service id"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hair-options и GET /api/v1/admin/hair-options
// Query params: serviceId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.QueryUUID(r, "serviceId")
	if err != nil {
		h.logger.Warn("GET /hair-options - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.ListHairOptions(r.Context(), serviceID)
	if err != nil {
		h.logger.Error("GET /hair-options - Failed to list hair options: service_id=%v, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hair-options - Hair options retrieved: count=%d", len(result.HairOptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
