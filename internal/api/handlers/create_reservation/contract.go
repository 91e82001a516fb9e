package create_reservation

import (
	"context"

	"github.com/m04kA/BeachClub-ReservationService/internal/usecase/create_reservation"
)

type ReservationUseCase interface {
	Execute(ctx context.Context, req *create_reservation.Request) (*create_reservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
