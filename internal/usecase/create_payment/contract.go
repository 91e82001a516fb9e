package create_payment

import (
	"context"
	"time"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	"github.com/m04kA/BeachClub-ReservationService/internal/integrations/gateway"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Payment, error)
	MarkAuthorized(ctx context.Context, id int64, transactionID string, at time.Time) error
	MarkDeclined(ctx context.Context, id int64, transactionID *string, reason string) error
}

// GatewayClient интерфейс клиента платежного шлюза
type GatewayClient interface {
	Authorize(ctx context.Context, req *gateway.AuthorizeRequest) (*gateway.AuthorizeResponse, error)
}

// Metrics счетчики домена (реализация допускает nil)
type Metrics interface {
	IncPayment(status string)
	IncReservationTransition(status string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
