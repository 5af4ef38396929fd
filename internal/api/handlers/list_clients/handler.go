package list_clients

import (
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListClients(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/clients - Failed to build client list: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/clients - Clients retrieved: clients=%d, bookings=%d",
		result.Stats.TotalClients, result.Stats.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
