package delete_closed_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/closeddates"
)

const (
	msgInvalidID = "некорректный ID закрытого дня"
	msgNotFound  = "закрытый день не найден"
	msgDeleted   = "день снова открыт для бронирования"
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

// Handle DELETE /api/v1/admin/closed-dates/{closedDateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["closedDateId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/closed-dates/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, closeddates.ErrClosedDateNotFound) {
			h.logger.Warn("DELETE /admin/closed-dates/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/closed-dates/{id} - Failed to delete: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/closed-dates/{id} - Closed date removed: id=%d", id)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}
