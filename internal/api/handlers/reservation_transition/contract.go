package reservation_transition

import (
	"context"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	Transition(ctx context.Context, id int64, action domain.ReservationAction, req *models.TransitionRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
