package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	cabinRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/cabin"
)

// UseCase use case расчета доступности кабины на день
// Только чтение: ничего не сохраняет и не блокирует строки
type UseCase struct {
	reservationRepo ReservationRepository
	cabinRepo       CabinRepository
	closedDateRepo  ClosedDateRepository
	txManager       TransactionManager
	hours           domain.BusinessHours
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
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		cabinRepo:       cabinRepo,
		closedDateRepo:  closedDateRepo,
		txManager:       txManager,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute строит сетку слотов кабины на запрошенную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailability: cabin=%d, date=%s", req.CabinID, req.Date.Format(domain.DateFormat))

	// 1. Проверяем кабину
	cabin, err := uc.cabinRepo.GetByID(ctx, req.CabinID)
	if err != nil {
		if errors.Is(err, cabinRepo.ErrCabinNotFound) {
			uc.logger.Warn("GetAvailability: cabin id=%d not found", req.CabinID)
			return nil, ErrCabinNotFound
		}
		uc.logger.Error("GetAvailability: failed to get cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to get cabin: %v", ErrInternal, err)
	}
	if !cabin.IsActive {
		uc.logger.Warn("GetAvailability: cabin id=%d is inactive", req.CabinID)
		return nil, ErrCabinNotFound
	}

	slots := uc.hours.Slots(req.Date)
	open, closing := uc.hours.Window(req.Date)
	resp := &Response{
		CabinID: req.CabinID,
		Date:    uc.hours.LocalDate(open),
	}

	// 2-3. Закрытый день и бронирования читаются из одного снимка
	var reservations []*domain.Reservation
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		closed, err := uc.closedDateRepo.IsClosed(txCtx, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to check closed date: %v", ErrInternal, err)
		}
		if closed {
			resp.Closed = true
			return nil
		}

		// Активные бронирования кабины, пересекающие рабочий день
		reservations, err = uc.reservationRepo.List(txCtx, domain.ReservationFilter{
			CabinID:    &req.CabinID,
			From:       &open,
			To:         &closing,
			OnlyActive: true,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("GetAvailability: cabin=%d, date=%s: %v", req.CabinID, req.Date.Format(domain.DateFormat), err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	// Закрытый день: все слоты заняты
	if resp.Closed {
		uc.logger.Info("GetAvailability: club is closed on %s", req.Date.Format(domain.DateFormat))
		resp.Slots = markAllOccupied(slots)
		return resp, nil
	}

	resp.Slots = markOccupancy(slots, reservations, uc.timeProvider.Now())

	uc.logger.Info("GetAvailability: cabin=%d, date=%s, reservations=%d",
		req.CabinID, req.Date.Format(domain.DateFormat), len(reservations))

	return resp, nil
}
