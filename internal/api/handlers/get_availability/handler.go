package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	"github.com/m04kA/BeachClub-ReservationService/internal/usecase/get_availability"
)

const (
	msgInvalidCabinID = "некорректный ID кабины"
	msgMissingDate    = "параметр date обязателен"
	msgInvalidDate    = "некорректный формат даты (ожидается YYYY-MM-DD)"
	msgCabinNotFound  = "кабина не найдена"
)

type Handler struct {
	useCase  AvailabilityUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase AvailabilityUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/cabins/{cabinId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cabinID, err := strconv.ParseInt(mux.Vars(r)["cabinId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cabins/{id}/availability - Invalid cabin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /cabins/{id}/availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /cabins/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &get_availability.Request{
		CabinID: cabinID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, get_availability.ErrCabinNotFound):
			h.logger.Warn("GET /cabins/{id}/availability - Cabin not found: cabin_id=%d", cabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, get_availability.ErrInvalidInput):
			h.logger.Warn("GET /cabins/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /cabins/{id}/availability - Failed to get availability: cabin_id=%d, error=%v",
				cabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cabins/{id}/availability - Availability calculated: cabin_id=%d, date=%s, closed=%t",
		cabinID, dateStr, result.Closed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
