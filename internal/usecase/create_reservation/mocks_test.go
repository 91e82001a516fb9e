package create_reservation

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, res)
	created, _ := args.Get(0).(*domain.Reservation)
	return created, args.Error(1)
}

func (m *mockReservationRepo) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).([]*domain.Reservation)
	return res, args.Error(1)
}

type mockCabinRepo struct{ mock.Mock }

func (m *mockCabinRepo) GetByID(ctx context.Context, id int64) (*domain.Cabin, error) {
	args := m.Called(ctx, id)
	cabin, _ := args.Get(0).(*domain.Cabin)
	return cabin, args.Error(1)
}

type mockClosedDateRepo struct{ mock.Mock }

func (m *mockClosedDateRepo) IsClosed(ctx context.Context, date time.Time) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

// inlineTx выполняет функцию без реальной транзакции
type inlineTx struct {
	calls     int
	commitErr error
}

func (tx *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return tx.commitErr
}

type countingMetrics struct{ created int }

func (m *countingMetrics) IncReservationCreated() { m.created++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}
