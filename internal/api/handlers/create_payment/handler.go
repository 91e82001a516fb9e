package create_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
	"github.com/m04kA/BeachClub-ReservationService/internal/usecase/create_payment"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgReservationNotFound  = "бронирование не найдено"
	msgNotPending           = "бронирование не ожидает оплаты"
	msgPaymentExists        = "платеж по бронированию уже создан"
	msgPaymentDeclined      = "платеж отклонен"
)

type Handler struct {
	useCase PaymentUseCase
	logger  Logger
}

func NewHandler(useCase PaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/payments - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req CreatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /reservations/{id}/payments - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID))
	if err != nil {
		switch {
		case errors.Is(err, create_payment.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/payments - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, create_payment.ErrReservationNotPending):
			h.logger.Warn("POST /reservations/{id}/payments - Reservation not pending: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgNotPending)

		case errors.Is(err, create_payment.ErrPaymentExists):
			h.logger.Warn("POST /reservations/{id}/payments - Payment exists: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgPaymentExists)

		case errors.Is(err, create_payment.ErrPaymentDeclined):
			h.logger.Warn("POST /reservations/{id}/payments - Payment declined: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgPaymentDeclined)

		case errors.Is(err, create_payment.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/payments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			// В т.ч. ErrGatewayUnavailable
			h.logger.Error("POST /reservations/{id}/payments - Failed to process payment: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/payments - Payment authorized: reservation_id=%d, payment_id=%d, reservation_status=%s",
		reservationID, result.Payment.ID, result.ReservationStatus)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
