package list_closed_dates

import (
	"net/http"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
)

type Handler struct {
	service ClosedDateService
	logger  Logger
}

func NewHandler(service ClosedDateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/closed-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		h.logger.Error("GET /closed-dates - Failed to list closed dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.ClosedDates)
}
