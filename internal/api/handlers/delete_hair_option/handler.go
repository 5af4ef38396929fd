package delete_hair_option

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

const (
	msgInvalidHairOptionID = "invalid hair option id"
	msgNotFound            = "hair option not found"
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

// Handle DELETE /api/v1/admin/hair-options/{hairOptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	optionID, err := handlers.PathUUID(r, "hairOptionId")
	if err != nil {
		h.logger.Warn("DELETE /admin/hair-options/{id} - Invalid hair option ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHairOptionID)
		return
	}

	if err := h.service.DeleteHairOption(r.Context(), optionID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrHairOptionNotFound):
			h.logger.Warn("DELETE /admin/hair-options/{id} - Hair option not found: hair_option_id=%s", optionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/hair-options/{id} - Failed to delete hair option: hair_option_id=%s, error=%v", optionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/hair-options/{id} - Hair option deleted: hair_option_id=%s", optionID)
	w.WriteHeader(http.StatusNoContent)
}
