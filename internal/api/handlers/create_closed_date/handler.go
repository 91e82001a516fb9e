package create_closed_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/closeddates"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/closeddates/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты (ожидается YYYY-MM-DD)"
	msgAlreadyClosed      = "этот день уже закрыт"
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

// Handle POST /api/v1/admin/closed-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClosedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/closed-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /admin/closed-dates - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	closedDate, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, closeddates.ErrInvalidInput):
			h.logger.Warn("POST /admin/closed-dates - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, closeddates.ErrAlreadyClosed):
			h.logger.Warn("POST /admin/closed-dates - Date already closed: %s", req.Date)
			handlers.RespondConflict(w, msgAlreadyClosed)

		default:
			h.logger.Error("POST /admin/closed-dates - Failed to close date: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/closed-dates - Date closed: id=%d, date=%s", closedDate.ID, closedDate.Date)
	handlers.RespondJSON(w, http.StatusCreated, closedDate)
}
