package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	paymentRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/BeachClub-ReservationService/pkg/ptr"
)

type fixture struct {
	svc          *Service
	reservations *mockReservationRepo
	payments     *mockPaymentRepo
	tx           *inlineTx
	metrics      *recordingMetrics
}

func newFixture() *fixture {
	f := &fixture{
		reservations: &mockReservationRepo{},
		payments:     &mockPaymentRepo{},
		tx:           &inlineTx{},
		metrics:      &recordingMetrics{},
	}
	f.svc = NewService(f.reservations, f.payments, f.tx, f.metrics, nopLogger{})
	return f
}

func reservationIn(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{ID: 7, CabinID: 1, Status: status}
}

func TestGetByID_IncludesPayment(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(7)).Return(reservationIn(domain.StatusConfirmed), nil)
	f.payments.On("GetByReservationID", mock.Anything, int64(7)).
		Return(&domain.Payment{ID: 3, Status: domain.PaymentAuthorized, Currency: "TRY"}, nil)

	resp, err := f.svc.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "CONFIRMED", resp.Status)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, "AUTHORIZED", resp.Payment.Status)
	assert.Equal(t, 1, f.tx.readOnly)
}

func TestGetByID_WithoutPayment(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(7)).Return(reservationIn(domain.StatusPending), nil)
	f.payments.On("GetByReservationID", mock.Anything, int64(7)).Return(nil, paymentRepo.ErrPaymentNotFound)

	resp, err := f.svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, resp.Payment)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(7)).Return(nil, reservationRepo.ErrReservationNotFound)

	_, err := f.svc.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	f.payments.AssertNotCalled(t, "GetByReservationID", mock.Anything, mock.Anything)
}

func TestGetByID_PaymentStorageFailure(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(7)).Return(reservationIn(domain.StatusConfirmed), nil)
	f.payments.On("GetByReservationID", mock.Anything, int64(7)).Return(nil, errors.New("connection reset"))

	_, err := f.svc.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestList_AppliesDefaultsAndStatus(t *testing.T) {
	f := newFixture()
	status := domain.StatusCheckedIn
	expected := domain.ReservationFilter{
		CabinID: ptr.Ptr(int64(1)),
		Status:  &status,
		Limit:   domain.DefaultListLimit,
	}
	f.reservations.On("List", mock.Anything, expected).
		Return([]*domain.Reservation{reservationIn(domain.StatusCheckedIn)}, nil)

	resp, err := f.svc.List(context.Background(), &models.ListReservationsRequest{
		CabinID: ptr.Ptr(int64(1)),
		Status:  ptr.Ptr("CHECKED_IN"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)
}

func TestList_CapsLimit(t *testing.T) {
	f := newFixture()
	f.reservations.On("List", mock.Anything, domain.ReservationFilter{Limit: domain.MaxListLimit}).
		Return([]*domain.Reservation{}, nil)

	resp, err := f.svc.List(context.Background(), &models.ListReservationsRequest{Limit: 10000})
	require.NoError(t, err)
	assert.NotNil(t, resp.Reservations)
}

func TestList_InvalidInput(t *testing.T) {
	from := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	tests := []struct {
		name string
		req  *models.ListReservationsRequest
	}{
		{name: "unknown status", req: &models.ListReservationsRequest{Status: ptr.Ptr("LOST")}},
		{name: "inverted period", req: &models.ListReservationsRequest{From: &from, To: &to}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.svc.List(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			f.reservations.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		})
	}
}

func TestTransition_CheckInThenSecondCheckInRejected(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(7)).Return(reservationIn(domain.StatusConfirmed), nil).Once()
	f.reservations.On("UpdateStatus", mock.Anything, int64(7), domain.StatusConfirmed, domain.StatusCheckedIn).Return(nil).Once()
	f.reservations.On("GetByID", mock.Anything, int64(7)).Return(reservationIn(domain.StatusCheckedIn), nil)

	resp, err := f.svc.Transition(context.Background(), 7, domain.ActionCheckIn, nil)
	require.NoError(t, err)
	assert.Equal(t, "CHECKED_IN", resp.Status)

	_, err = f.svc.Transition(context.Background(), 7, domain.ActionCheckIn, nil)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, "reservation is already checked in", Message(err))

	assert.Equal(t, []string{"CHECKED_IN"}, f.metrics.transitions)
	f.reservations.AssertNumberOfCalls(t, "UpdateStatus", 1)
}

func TestTransition_CancelCompletedRejected(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(7)).Return(reservationIn(domain.StatusCompleted), nil)

	_, err := f.svc.Transition(context.Background(), 7, domain.ActionCancel, &models.TransitionRequest{Reason: ptr.Ptr("rain")})
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, "completed reservation cannot be cancelled", Message(err))
	f.reservations.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransition_CancelStoresTrimmedReason(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(7)).Return(reservationIn(domain.StatusPending), nil).Once()
	f.reservations.On("Cancel", mock.Anything, int64(7), domain.StatusPending, "storm warning").Return(nil)
	f.reservations.On("GetByID", mock.Anything, int64(7)).Return(reservationIn(domain.StatusCancelled), nil)

	resp, err := f.svc.Transition(context.Background(), 7, domain.ActionCancel,
		&models.TransitionRequest{Reason: ptr.Ptr("  storm warning ")})
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
	f.reservations.AssertExpectations(t)
}

func TestTransition_ConcurrentChangeIsRejected(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(7)).Return(reservationIn(domain.StatusCheckedIn), nil)
	f.reservations.On("UpdateStatus", mock.Anything, int64(7), domain.StatusCheckedIn, domain.StatusInProgress).
		Return(reservationRepo.ErrStatusConflict)

	_, err := f.svc.Transition(context.Background(), 7, domain.ActionStart, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, f.metrics.transitions)
}

func TestTransition_Errors(t *testing.T) {
	tests := []struct {
		name    string
		action  domain.ReservationAction
		req     *models.TransitionRequest
		repoErr error
		wantErr error
	}{
		{name: "unknown action", action: "teleport", wantErr: ErrInvalidInput},
		{name: "reason too long", action: domain.ActionCancel, req: &models.TransitionRequest{Reason: ptr.Ptr(string(make([]rune, 501)))}, wantErr: ErrInvalidInput},
		{name: "not found", action: domain.ActionStart, repoErr: reservationRepo.ErrReservationNotFound, wantErr: ErrReservationNotFound},
		{name: "repository failure", action: domain.ActionStart, repoErr: errors.New("connection reset"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.reservations.On("GetByID", mock.Anything, int64(7)).Return(nil, tt.repoErr)

			_, err := f.svc.Transition(context.Background(), 7, tt.action, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
