package reservation_transition

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
	"github.com/m04kA/BeachClub-ReservationService/internal/api/middleware"
	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/reservations"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "бронирование не найдено"
)

// Handler обслуживает одно действие администратора над бронированием
type Handler struct {
	service ReservationService
	action  domain.ReservationAction
	logger  Logger
}

func NewHandler(service ReservationService, action domain.ReservationAction, logger Logger) *Handler {
	return &Handler{
		service: service,
		action:  action,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/reservations/{reservationId}/{action}
// Тело запроса опционально; для cancel можно передать {"reason": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/%s - Invalid reservation ID: %v", h.action, err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req models.TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PATCH /admin/reservations/{id}/%s - Invalid request body: %v", h.action, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		adminID = "unknown"
	}

	reservation, err := h.service.Transition(r.Context(), reservationID, h.action, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/%s - Reservation not found: reservation_id=%d",
				h.action, reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/reservations/{id}/%s - Invalid transition: reservation_id=%d, admin=%s, error=%v",
				h.action, reservationID, adminID, err)
			handlers.RespondBadRequest(w, reservations.Message(err))

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/reservations/{id}/%s - Invalid input: %v", h.action, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /admin/reservations/{id}/%s - Failed to apply action: reservation_id=%d, admin=%s, error=%v",
				h.action, reservationID, adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id}/%s - Reservation updated: reservation_id=%d, status=%s, admin=%s",
		h.action, reservationID, reservation.Status, adminID)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
