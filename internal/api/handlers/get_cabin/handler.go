package get_cabin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/cabins"
)

const (
	msgInvalidCabinID = "некорректный ID кабины"
	msgNotFound       = "кабина не найдена"
)

type Handler struct {
	service CabinService
	logger  Logger
}

func NewHandler(service CabinService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cabins/{cabinId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cabinID, err := strconv.ParseInt(mux.Vars(r)["cabinId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cabins/{id} - Invalid cabin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	cabin, err := h.service.GetByID(r.Context(), cabinID, true)
	if err != nil {
		if errors.Is(err, cabins.ErrCabinNotFound) {
			h.logger.Warn("GET /cabins/{id} - Cabin not found: cabin_id=%d", cabinID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /cabins/{id} - Failed to get cabin: cabin_id=%d, error=%v", cabinID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, cabin)
}
