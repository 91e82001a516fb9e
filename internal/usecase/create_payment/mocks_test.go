package create_payment

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	"github.com/m04kA/BeachClub-ReservationService/internal/integrations/gateway"
)

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.Reservation)
	return res, args.Error(1)
}

func (m *mockReservationRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error {
	return m.Called(ctx, id, from, to).Error(0)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, p)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Payment) *domain.Payment); ok {
		return fn(ctx, p), args.Error(1)
	}
	created, _ := args.Get(0).(*domain.Payment)
	return created, args.Error(1)
}

func (m *mockPaymentRepo) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Payment, error) {
	args := m.Called(ctx, reservationID)
	p, _ := args.Get(0).(*domain.Payment)
	return p, args.Error(1)
}

func (m *mockPaymentRepo) MarkAuthorized(ctx context.Context, id int64, transactionID string, at time.Time) error {
	return m.Called(ctx, id, transactionID, at).Error(0)
}

func (m *mockPaymentRepo) MarkDeclined(ctx context.Context, id int64, transactionID *string, reason string) error {
	return m.Called(ctx, id, transactionID, reason).Error(0)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) Authorize(ctx context.Context, req *gateway.AuthorizeRequest) (*gateway.AuthorizeResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*gateway.AuthorizeResponse)
	return resp, args.Error(1)
}

type recordingMetrics struct {
	payments    []string
	transitions []string
}

func (m *recordingMetrics) IncPayment(status string) { m.payments = append(m.payments, status) }

func (m *recordingMetrics) IncReservationTransition(status string) {
	m.transitions = append(m.transitions, status)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}
