package update_cabin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/cabins"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/cabins/models"
)

const (
	msgInvalidCabinID     = "некорректный ID кабины"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "кабина не найдена"
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

// Handle PUT /api/v1/admin/cabins/{cabinId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cabinID, err := strconv.ParseInt(mux.Vars(r)["cabinId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/cabins/{id} - Invalid cabin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	var req models.UpdateCabinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/cabins/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cabin, err := h.service.Update(r.Context(), cabinID, &req)
	if err != nil {
		switch {
		case errors.Is(err, cabins.ErrCabinNotFound):
			h.logger.Warn("PUT /admin/cabins/{id} - Cabin not found: cabin_id=%d", cabinID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cabins.ErrInvalidInput):
			h.logger.Warn("PUT /admin/cabins/{id} - Invalid input: cabin_id=%d, error=%v", cabinID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /admin/cabins/{id} - Failed to update cabin: cabin_id=%d, error=%v", cabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/cabins/{id} - Cabin updated: cabin_id=%d", cabinID)
	handlers.RespondJSON(w, http.StatusOK, cabin)
}
