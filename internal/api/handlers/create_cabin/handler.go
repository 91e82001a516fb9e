package create_cabin

import (
	"errors"
	"net/http"

	"github.com/m04kA/BeachClub-ReservationService/internal/api/handlers"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/cabins"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/cabins/models"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/admin/cabins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCabinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/cabins - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /admin/cabins - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	cabin, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, cabins.ErrInvalidInput) {
			h.logger.Warn("POST /admin/cabins - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /admin/cabins - Failed to create cabin: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/cabins - Cabin created: cabin_id=%d", cabin.ID)
	handlers.RespondJSON(w, http.StatusCreated, cabin)
}
