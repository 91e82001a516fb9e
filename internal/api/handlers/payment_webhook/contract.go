package payment_webhook

import (
	"context"

	"github.com/m04kA/BeachClub-ReservationService/internal/usecase/process_webhook"
)

type WebhookUseCase interface {
	Execute(ctx context.Context, req *process_webhook.Request) (*process_webhook.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
