package process_webhook

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	paymentRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/payment"
	"github.com/m04kA/BeachClub-ReservationService/internal/integrations/gateway"
)

// UseCase use case обработки асинхронных уведомлений шлюза
type UseCase struct {
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	txManager       TransactionManager
	webhookSecret   string
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	webhookSecret string,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		txManager:       txManager,
		webhookSecret:   webhookSecret,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute проверяет подпись и применяет уведомление ровно один раз
// Платеж блокируется по идентификатору транзакции; повторное уведомление (webhook_received) ничего не меняет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Result, error) {
	event, err := gateway.ParseWebhook(uc.webhookSecret, req.Body, req.Signature)
	if err != nil {
		if errors.Is(err, gateway.ErrInvalidSignature) {
			uc.metrics.IncWebhookEvent("unknown", OutcomeInvalidSignature)
			return &Result{Outcome: OutcomeInvalidSignature}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		uc.metrics.IncWebhookEvent("unknown", OutcomeInvalidEvent)
		return &Result{Outcome: OutcomeInvalidEvent}, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	result := &Result{EventType: event.EventType, TransactionID: event.TransactionID}
	status, _ := paymentStatusFor(event.EventType)

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = uc.timeProvider.Now()
	}

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем платеж (FOR UPDATE)
		payment, err := uc.paymentRepo.GetByGatewayTransactionID(txCtx, event.TransactionID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				return ErrPaymentNotFound
			}
			return fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
		}
		result.ReservationID = payment.ReservationID

		// 2. Уведомление по этому платежу уже обработано или платеж в конечном статусе
		if payment.WebhookReceived || payment.IsFinal() {
			result.Outcome = OutcomeDuplicate
			result.PaymentStatus = payment.Status
			return nil
		}

		applied, err := uc.paymentRepo.ApplyWebhook(txCtx, payment.ID, status, occurredAt)
		if err != nil {
			return fmt.Errorf("%w: failed to apply webhook: %v", ErrInternal, err)
		}
		if !applied {
			result.Outcome = OutcomeDuplicate
			result.PaymentStatus = payment.Status
			return nil
		}
		result.PaymentStatus = status

		// 3. Синхронизируем бронирование
		reservation, err := uc.reservationRepo.GetByID(txCtx, payment.ReservationID)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}
		result.ReservationStatus = reservation.Status

		action, ok := reservationActionFor(event.EventType, reservation)
		if !ok {
			result.Outcome = OutcomeApplied
			return nil
		}

		next, err := reservation.NextStatus(action)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if action == domain.ActionCancel {
			err = uc.reservationRepo.Cancel(txCtx, reservation.ID, reservation.Status, cancellationReason(event.EventType))
		} else {
			err = uc.reservationRepo.UpdateStatus(txCtx, reservation.ID, reservation.Status, next)
		}
		if err != nil {
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result.ReservationStatus = next
		result.ReservationChanged = true
		result.Outcome = OutcomeApplied
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			result.Outcome = OutcomeUnknownPayment
		} else {
			result.Outcome = OutcomeError
		}
		uc.metrics.IncWebhookEvent(event.EventType, result.Outcome)
		return result, err
	}

	uc.metrics.IncWebhookEvent(event.EventType, result.Outcome)
	if result.Outcome == OutcomeApplied {
		uc.metrics.IncPayment(string(result.PaymentStatus))
		if result.ReservationChanged {
			uc.metrics.IncReservationTransition(string(result.ReservationStatus))
		}
	}

	uc.logger.Info("ProcessWebhook: event=%s, txn=%s, outcome=%s, payment_status=%s, reservation=%d, reservation_status=%s",
		result.EventType, result.TransactionID, result.Outcome, result.PaymentStatus,
		result.ReservationID, result.ReservationStatus)

	return result, nil
}
