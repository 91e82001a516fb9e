package create_closed_date

import (
	"context"

	"github.com/m04kA/BeachClub-ReservationService/internal/service/closeddates/models"
)

type ClosedDateService interface {
	Create(ctx context.Context, req *models.CreateClosedDateRequest) (*models.ClosedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
