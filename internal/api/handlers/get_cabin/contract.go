package get_cabin

import (
	"context"

	"github.com/m04kA/BeachClub-ReservationService/internal/service/cabins/models"
)

type CabinService interface {
	GetByID(ctx context.Context, id int64, onlyActive bool) (*models.CabinResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
