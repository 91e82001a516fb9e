package process_webhook

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
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

func (m *mockReservationRepo) Cancel(ctx context.Context, id int64, from domain.ReservationStatus, reason string) error {
	return m.Called(ctx, id, from, reason).Error(0)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) GetByGatewayTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	args := m.Called(ctx, transactionID)
	p, _ := args.Get(0).(*domain.Payment)
	return p, args.Error(1)
}

func (m *mockPaymentRepo) ApplyWebhook(ctx context.Context, id int64, status domain.PaymentStatus, at time.Time) (bool, error) {
	args := m.Called(ctx, id, status, at)
	return args.Bool(0), args.Error(1)
}

type inlineTx struct{ calls int }

func (tx *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type recordingMetrics struct {
	webhooks    []string
	payments    []string
	transitions []string
}

func (m *recordingMetrics) IncWebhookEvent(event, outcome string) {
	m.webhooks = append(m.webhooks, event+"/"+outcome)
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
