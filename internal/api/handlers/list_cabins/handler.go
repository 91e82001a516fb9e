package list_cabins

import (
	"net/http"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
)

type Handler struct {
	service    CabinService
	onlyActive bool
	logger     Logger
}

// NewHandler onlyActive=true для публичного каталога, false для администратора
func NewHandler(service CabinService, onlyActive bool, logger Logger) *Handler {
	return &Handler{
		service:    service,
		onlyActive: onlyActive,
		logger:     logger,
	}
}

// Handle GET /api/v1/cabins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), h.onlyActive)
	if err != nil {
		h.logger.Error("GET /cabins - Failed to list cabins: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cabins - Cabins retrieved successfully: count=%d", len(result.Cabins))
	handlers.RespondJSON(w, http.StatusOK, result.Cabins)
}
