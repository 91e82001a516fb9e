package cabins

import (
	"context"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

// CabinRepository интерфейс репозитория кабин
type CabinRepository interface {
	Create(ctx context.Context, c *domain.Cabin) (*domain.Cabin, error)
	GetByID(ctx context.Context, id int64) (*domain.Cabin, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Cabin, error)
	Update(ctx context.Context, c *domain.Cabin) (*domain.Cabin, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
