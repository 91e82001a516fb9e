package create_payment

import (
	"context"

	"github.com/m04kA/BeachClub-ReservationService/internal/usecase/create_payment"
)

type PaymentUseCase interface {
	Execute(ctx context.Context, req *create_payment.Request) (*create_payment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
