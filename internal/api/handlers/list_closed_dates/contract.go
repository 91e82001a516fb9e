package list_closed_dates

import (
	"context"

	"github.com/m04kA/BeachClub-ReservationService/internal/service/closeddates/models"
)

type ClosedDateService interface {
	ListUpcoming(ctx context.Context) (*models.ClosedDateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
