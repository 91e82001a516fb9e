package create_payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	paymentRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/BeachClub-ReservationService/internal/integrations/gateway"
	"github.com/m04kA/BeachClub-ReservationService/pkg/ptr"
)

// UseCase use case синхронной оплаты бронирования через шлюз
type UseCase struct {
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	gateway         GatewayClient
	currency        string
	metrics         Metrics
	newID           func() string
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	gatewayClient GatewayClient,
	currency string,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		gateway:         gatewayClient,
		currency:        currency,
		metrics:         metrics,
		newID:           uuid.NewString,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute создает платеж и авторизует его в шлюзе
// Успех: платеж AUTHORIZED, затем бронирование CONFIRMED.
// Отказ банка: платеж DECLINED, ErrPaymentDeclined.
// Недоступность шлюза: платеж DECLINED, ErrGatewayUnavailable
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePayment: reservation=%d, installments=%d", req.ReservationID, req.Installments)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронирование должно ожидать оплаты
	reservation, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("CreatePayment: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("CreatePayment: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}
	if reservation.Status != domain.StatusPending {
		uc.logger.Warn("CreatePayment: reservation id=%d has status %s", reservation.ID, reservation.Status)
		return nil, ErrReservationNotPending
	}

	// 3. Не более одного платежа на бронирование
	_, err = uc.paymentRepo.GetByReservationID(ctx, reservation.ID)
	switch {
	case err == nil:
		uc.logger.Warn("CreatePayment: reservation id=%d already has a payment", reservation.ID)
		return nil, ErrPaymentExists
	case !errors.Is(err, paymentRepo.ErrPaymentNotFound):
		uc.logger.Error("CreatePayment: failed to get payment for reservation id=%d: %v", reservation.ID, err)
		return nil, fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
	}

	// 4. Сохраняем платеж до обращения к шлюзу
	payment, err := uc.paymentRepo.Create(ctx, &domain.Payment{
		ReservationID:  reservation.ID,
		AmountCents:    reservation.TotalPriceCents,
		Currency:       uc.currency,
		Installments:   req.Installments,
		ConversationID: uc.newID(),
		Status:         domain.PaymentPending,
	})
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentExists) {
			uc.logger.Warn("CreatePayment: concurrent payment for reservation id=%d", reservation.ID)
			return nil, ErrPaymentExists
		}
		uc.logger.Error("CreatePayment: failed to create payment: %v", err)
		return nil, fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
	}

	// 5. Синхронная авторизация
	resp, err := uc.gateway.Authorize(ctx, &gateway.AuthorizeRequest{
		ConversationID: payment.ConversationID,
		Reference:      strconv.FormatInt(reservation.ID, 10),
		AmountMinor:    payment.AmountCents,
		Currency:       payment.Currency,
		Installments:   payment.Installments,
		CardToken:      req.CardToken,
		Buyer: gateway.Buyer{
			Name:  reservation.CustomerName,
			Email: reservation.CustomerEmail,
			Phone: reservation.CustomerPhone,
		},
	})
	if err != nil {
		uc.logger.Error("CreatePayment: gateway error, payment=%d: %v", payment.ID, err)
		uc.decline(ctx, payment, nil, err.Error())
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	if !resp.IsSuccess() {
		reason := DeclineReason{Code: resp.ErrorCode, Message: resp.ErrorMessage}.String()
		uc.logger.Warn("CreatePayment: payment=%d declined: %s", payment.ID, reason)

		var txID *string
		if resp.TransactionID != "" {
			txID = ptr.Ptr(resp.TransactionID)
		}
		uc.decline(ctx, payment, txID, reason)
		return nil, fmt.Errorf("%w: %w: %s", ErrPaymentDeclined, gateway.ErrDeclined, reason)
	}

	// 6. Авторизовано: идентификатор транзакции фиксируется отдельной записью,
	// чтобы вебхук нашел платеж даже при сбое подтверждения бронирования
	now := uc.timeProvider.Now()
	if err := uc.paymentRepo.MarkAuthorized(ctx, payment.ID, resp.TransactionID, now); err != nil {
		uc.logger.Error("CreatePayment: failed to store authorization, payment=%d, txn=%s: %v",
			payment.ID, resp.TransactionID, err)
		return nil, fmt.Errorf("%w: failed to store authorization: %v", ErrInternal, err)
	}

	payment.Status = domain.PaymentAuthorized
	payment.GatewayTransactionID = ptr.Ptr(resp.TransactionID)
	payment.AuthorizedAt = &now
	uc.metrics.IncPayment(string(domain.PaymentAuthorized))

	// 7. Подтверждаем бронирование; при неудаче его подтвердит вебхук PAYMENT_CAPTURED
	reservationStatus := domain.StatusConfirmed
	err = uc.reservationRepo.UpdateStatus(ctx, reservation.ID, domain.StatusPending, domain.StatusConfirmed)
	switch {
	case err == nil:
		uc.metrics.IncReservationTransition(string(reservationStatus))
	case errors.Is(err, reservationRepo.ErrStatusConflict):
		// Бронирование успели отменить, деньги авторизованы: разбирается по вебхуку или вручную
		uc.logger.Warn("CreatePayment: reservation id=%d changed status during payment, not confirmed", reservation.ID)
		reservationStatus = uc.currentStatus(ctx, reservation)
	default:
		uc.logger.Error("CreatePayment: failed to confirm reservation id=%d after payment=%d authorized: %v",
			reservation.ID, payment.ID, err)
		reservationStatus = reservation.Status
	}

	uc.logger.Info("CreatePayment: payment=%d authorized, txn=%s, reservation=%d",
		payment.ID, resp.TransactionID, reservation.ID)

	return &Response{Payment: payment, ReservationStatus: reservationStatus}, nil
}

// currentStatus перечитывает статус бронирования; при ошибке возвращает прочитанный ранее
func (uc *UseCase) currentStatus(ctx context.Context, reservation *domain.Reservation) domain.ReservationStatus {
	current, err := uc.reservationRepo.GetByID(ctx, reservation.ID)
	if err != nil {
		uc.logger.Warn("CreatePayment: failed to reread reservation id=%d: %v", reservation.ID, err)
		return reservation.Status
	}
	return current.Status
}

// decline переводит платеж в DECLINED; ошибка сохранения только логируется
func (uc *UseCase) decline(ctx context.Context, payment *domain.Payment, txID *string, reason string) {
	if err := uc.paymentRepo.MarkDeclined(ctx, payment.ID, txID, reason); err != nil {
		uc.logger.Error("CreatePayment: failed to mark payment=%d declined: %v", payment.ID, err)
		return
	}

	payment.Status = domain.PaymentDeclined
	payment.GatewayTransactionID = txID
	payment.FailureReason = &reason
	uc.metrics.IncPayment(string(domain.PaymentDeclined))
}
