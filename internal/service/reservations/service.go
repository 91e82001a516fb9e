package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	paymentRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/reservations/models"
)

// Service сервис бронирований для администраторов
type Service struct {
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает бронирование вместе с платежом
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	// Бронирование и платеж читаются из одного снимка, без блокировок
	var reservation *domain.Reservation
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		reservation, err = s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
		}

		payment, err := s.paymentRepo.GetByReservationID(txCtx, id)
		switch {
		case err == nil:
			reservation.Payment = payment
		case !errors.Is(err, paymentRepo.ErrPaymentNotFound):
			return fmt.Errorf("%w: GetByID - payment repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: failed to read reservation id=%d: %v", id, err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: GetByID - %v", ErrInternal, err)
		}
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования с фильтрацией по кабине, периоду и статусу
//
// Примеры использования:
// - Все бронирования кабины: CabinID
// - Бронирования за период: From и To (пересечение с периодом)
// - Только заселенные: Status = "CHECKED_IN"
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		s.logger.Warn("List: invalid period %s - %s", filter.From, filter.To)
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Transition применяет действие администратора к бронированию
// Бронирование читается с блокировкой строки, обновление статуса условное,
// поэтому два параллельных действия не могут оба пройти из одного исходного статуса
func (s *Service) Transition(
	ctx context.Context,
	id int64,
	action domain.ReservationAction,
	req *models.TransitionRequest,
) (*models.ReservationResponse, error) {
	s.logger.Info("Transition: reservation id=%d, action=%s", id, action)

	if !action.IsValid() {
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}

	reason, err := cancellationReason(action, req)
	if err != nil {
		s.logger.Warn("Transition: invalid request for reservation id=%d: %v", id, err)
		return nil, err
	}

	var updated *domain.Reservation

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Transition - get reservation: %v", ErrInternal, err)
		}

		next, err := reservation.NextStatus(action)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, strings.TrimPrefix(err.Error(), domain.ErrInvalidTransition.Error()+": "))
		}

		if action == domain.ActionCancel {
			err = s.reservationRepo.Cancel(txCtx, id, reservation.Status, reason)
		} else {
			err = s.reservationRepo.UpdateStatus(txCtx, id, reservation.Status, next)
		}
		if err != nil {
			if errors.Is(err, reservationRepo.ErrStatusConflict) {
				return fmt.Errorf("%w: reservation status changed concurrently", ErrInvalidTransition)
			}
			return fmt.Errorf("%w: Transition - update status: %v", ErrInternal, err)
		}

		updated, err = s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Transition - reload reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			s.logger.Warn("Transition: reservation id=%d not found", id)
		case errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("Transition: reservation id=%d, action=%s rejected: %v", id, action, err)
		default:
			s.logger.Error("Transition: reservation id=%d, action=%s failed: %v", id, action, err)
		}
		return nil, err
	}

	s.metrics.IncReservationTransition(string(updated.Status))
	s.logger.Info("Transition: reservation id=%d is now %s", id, updated.Status)

	return models.FromDomainReservation(updated), nil
}

// Message сообщение из ошибки недопустимого перехода без префикса sentinel-ошибки
func Message(err error) string {
	return strings.TrimPrefix(err.Error(), ErrInvalidTransition.Error()+": ")
}

func cancellationReason(action domain.ReservationAction, req *models.TransitionRequest) (string, error) {
	if action != domain.ActionCancel || req == nil || req.Reason == nil {
		return "", nil
	}

	reason := strings.TrimSpace(*req.Reason)
	if len([]rune(reason)) > domain.MaxCancellationReasonLength {
		return "", fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}
	return reason, nil
}
