package cabins

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

type mockCabinRepo struct{ mock.Mock }

func (m *mockCabinRepo) Create(ctx context.Context, c *domain.Cabin) (*domain.Cabin, error) {
	args := m.Called(ctx, c)
	res, _ := args.Get(0).(*domain.Cabin)
	return res, args.Error(1)
}

func (m *mockCabinRepo) GetByID(ctx context.Context, id int64) (*domain.Cabin, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.Cabin)
	return res, args.Error(1)
}

func (m *mockCabinRepo) List(ctx context.Context, onlyActive bool) ([]*domain.Cabin, error) {
	args := m.Called(ctx, onlyActive)
	res, _ := args.Get(0).([]*domain.Cabin)
	return res, args.Error(1)
}

func (m *mockCabinRepo) Update(ctx context.Context, c *domain.Cabin) (*domain.Cabin, error) {
	args := m.Called(ctx, c)
	res, _ := args.Get(0).(*domain.Cabin)
	return res, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}
