package update_hair_option

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
)

const (
	msgInvalidHairOptionID = "invalid hair option id"
	msgInvalidRequestBody  = "invalid request body"
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

// Handle PUT /api/v1/admin/hair-options/{hairOptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	optionID, err := handlers.PathUUID(r, "hairOptionId")
	if err != nil {
		h.logger.Warn("PUT /admin/hair-options/{id} - Invalid hair option ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHairOptionID)
		return
	}

	var req models.UpdateHairOptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/hair-options/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateHairOption(r.Context(), optionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/hair-options/{id} - Invalid input: hair_option_id=%s, error=%v", optionID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, catalog.ErrHairOptionNotFound):
			h.logger.Warn("PUT /admin/hair-options/{id} - Hair option not found: hair_option_id=%s", optionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /admin/hair-options/{id} - Failed to update hair option: hair_option_id=%s, error=%v", optionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/hair-options/{id} - Hair option updated: hair_option_id=%s", optionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
