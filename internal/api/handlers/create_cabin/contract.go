package create_cabin

import (
	"context"

	"github.com/m04kA/BeachClub-ReservationService/internal/service/cabins/models"
)

type CabinService interface {
	Create(ctx context.Context, req *models.CreateCabinRequest) (*models.CabinResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
