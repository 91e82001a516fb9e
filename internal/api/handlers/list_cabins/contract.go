package list_cabins

import (
	"context"

	"github.com/m04kA/BeachClub-ReservationService/internal/service/cabins/models"
)

type CabinService interface {
	List(ctx context.Context, onlyActive bool) (*models.CabinListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
