package reservations

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.Reservation)
	return res, args.Error(1)
}

func (m *mockReservationRepo) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).([]*domain.Reservation)
	return res, args.Error(1)
}

func (m *mockReservationRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error {
	return m.Called(ctx, id, from, to).Error(0)
}

func (m *mockReservationRepo) Cancel(ctx context.Context, id int64, from domain.ReservationStatus, reason string) error {
	return m.Called(ctx, id, from, reason).Error(0)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Payment, error) {
	args := m.Called(ctx, reservationID)
	p, _ := args.Get(0).(*domain.Payment)
	return p, args.Error(1)
}

type inlineTx struct{ readOnly int }

func (tx *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (tx *inlineTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.readOnly++
	return fn(ctx)
}

type recordingMetrics struct{ transitions []string }

func (m *recordingMetrics) IncReservationTransition(status string) {
	m.transitions = append(m.transitions, status)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}
