package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	cabinRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/cabin"
	"github.com/m04kA/BeachClub-ReservationService/pkg/txmanager"
)

// UseCase use case для создания бронирования кабины
type UseCase struct {
	reservationRepo ReservationRepository
	cabinRepo       CabinRepository
	closedDateRepo  ClosedDateRepository
	txManager       TransactionManager
	hours           domain.BusinessHours
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	cabinRepo CabinRepository,
	closedDateRepo ClosedDateRepository,
	txManager TransactionManager,
	hours domain.BusinessHours,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		cabinRepo:       cabinRepo,
		closedDateRepo:  closedDateRepo,
		txManager:       txManager,
		hours:           hours,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в сериализуемой транзакции,
// поэтому два параллельных запроса на один слот не могут оба завершиться успешно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: cabin=%d, check_in=%s, check_out=%s",
		req.CabinID, req.CheckIn.Format("2006-01-02T15:04Z07:00"), req.CheckOut.Format("2006-01-02T15:04Z07:00"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Рабочее окно и сетка слотов
	now := uc.timeProvider.Now()
	if err := validateTimeRange(uc.hours, req.CheckIn, req.CheckOut, now); err != nil {
		uc.logger.Warn("CreateReservation: time range rejected: %v", err)
		return nil, err
	}

	// 3. Кабина должна существовать и быть активной
	cabin, err := uc.cabinRepo.GetByID(ctx, req.CabinID)
	if err != nil {
		if errors.Is(err, cabinRepo.ErrCabinNotFound) {
			uc.logger.Warn("CreateReservation: cabin id=%d not found", req.CabinID)
			return nil, ErrCabinNotFound
		}
		uc.logger.Error("CreateReservation: failed to get cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to get cabin: %v", ErrInternal, err)
	}
	if !cabin.IsActive {
		uc.logger.Warn("CreateReservation: cabin id=%d is inactive", req.CabinID)
		return nil, ErrCabinNotFound
	}

	// 4. Закрытые дни
	localDay := uc.hours.LocalDate(req.CheckIn)
	closed, err := uc.closedDateRepo.IsClosed(ctx, localDay)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to check closed date: %v", err)
		return nil, fmt.Errorf("%w: failed to check closed date: %v", ErrInternal, err)
	}
	if closed {
		uc.logger.Warn("CreateReservation: club is closed on %s", localDay.Format(domain.DateFormat))
		return nil, ErrClubClosed
	}

	var result *domain.Reservation

	// 5. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные бронирования кабины в интервале с блокировкой (FOR UPDATE)
		existing, err := uc.reservationRepo.List(txCtx, domain.ReservationFilter{
			CabinID:    &req.CabinID,
			From:       &req.CheckIn,
			To:         &req.CheckOut,
			OnlyActive: true,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		// 5.2. Любое пересечение с активным бронированием - конфликт
		if hasOverlap(existing, req.CheckIn, req.CheckOut) {
			uc.logger.Warn("CreateReservation: slot not available, cabin=%d, overlapping=%d",
				req.CabinID, len(existing))
			return ErrSlotNotAvailable
		}

		// 5.3. Создаем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			CabinID:         req.CabinID,
			CustomerName:    strings.TrimSpace(req.CustomerName),
			CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
			CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
			CheckIn:         req.CheckIn,
			CheckOut:        req.CheckOut,
			Status:          domain.StatusPending,
			TotalPriceCents: cabin.PriceFor(req.CheckOut.Sub(req.CheckIn)),
			Notes:           req.Notes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			return nil, err
		}
		// Параллельная транзакция заняла тот же интервал
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateReservation: serialization conflict, cabin=%d: %v", req.CabinID, err)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateReservation: transaction failed, cabin=%d: %v", req.CabinID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.IncReservationCreated()
	uc.logger.Info("CreateReservation: reservation created id=%d, cabin=%d, total=%d",
		result.ID, result.CabinID, result.TotalPriceCents)

	return result, nil
}
