package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
	"github.com/m04kA/BeachClub-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCabinNotFound      = "кабина не найдена"
	msgClubClosed         = "клуб закрыт в выбранную дату"
	msgInvalidTimeRange   = "время должно быть выровнено по часовым слотам в пределах рабочего дня 08:00-22:00"
	msgTooLateToBook      = "время начала бронирования уже прошло"
	msgSlotNotAvailable   = "выбранное время уже занято"
)

type Handler struct {
	useCase ReservationUseCase
	logger  Logger
}

func NewHandler(useCase ReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, create_reservation.ErrCabinNotFound):
			h.logger.Warn("POST /reservations - Cabin not found: cabin_id=%d", req.CabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, create_reservation.ErrClubClosed):
			h.logger.Warn("POST /reservations - Club closed: check_in=%s", req.CheckIn)
			handlers.RespondBadRequest(w, msgClubClosed)

		case errors.Is(err, create_reservation.ErrInvalidTimeRange):
			h.logger.Warn("POST /reservations - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, create_reservation.ErrTooLateToBook):
			h.logger.Warn("POST /reservations - Check-in in the past: check_in=%s", req.CheckIn)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, create_reservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, create_reservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot conflict: cabin_id=%d, check_in=%s, check_out=%s",
				req.CabinID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: cabin_id=%d, error=%v",
				req.CabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, cabin_id=%d",
		result.ID, result.CabinID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
