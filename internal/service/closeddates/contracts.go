package closeddates

import (
	"context"
	"time"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

// ClosedDateRepository интерфейс репозитория закрытых дней
type ClosedDateRepository interface {
	Create(ctx context.Context, cd *domain.ClosedDate) (*domain.ClosedDate, error)
	List(ctx context.Context, from *time.Time) ([]*domain.ClosedDate, error)
	Delete(ctx context.Context, id int64) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
