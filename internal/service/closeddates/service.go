package closeddates

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	closedDateRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/closeddate"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/closeddates/models"
)

// Service сервис закрытых дней клуба
type Service struct {
	closedDateRepo ClosedDateRepository
	location       *time.Location
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса закрытых дней
// location - часовой пояс клуба, в котором определяется "сегодня"
func NewService(closedDateRepo ClosedDateRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		closedDateRepo: closedDateRepo,
		location:       location,
		timeProvider:   RealTimeProvider{},
		logger:         logger,
	}
}

// ListUpcoming возвращает закрытые дни начиная с сегодняшнего
func (s *Service) ListUpcoming(ctx context.Context) (*models.ClosedDateListResponse, error) {
	today := domain.NormalizeClosedDate(s.timeProvider.Now().In(s.location))

	dates, err := s.closedDateRepo.List(ctx, &today)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClosedDateList(dates), nil
}

// Create закрывает день для бронирований
func (s *Service) Create(ctx context.Context, req *models.CreateClosedDateRequest) (*models.ClosedDateResponse, error) {
	date, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(req.Date), s.location)
	if err != nil {
		s.logger.Warn("Create: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	cd := &domain.ClosedDate{Date: date}
	if req.Reason != nil {
		if reason := strings.TrimSpace(*req.Reason); reason != "" {
			cd.Reason = &reason
		}
	}

	created, err := s.closedDateRepo.Create(ctx, cd)
	if err != nil {
		if errors.Is(err, closedDateRepo.ErrDuplicateDate) {
			s.logger.Warn("Create: date %s is already closed", req.Date)
			return nil, ErrAlreadyClosed
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: date %s closed, id=%d", created.Date.Format(domain.DateFormat), created.ID)
	return models.FromDomainClosedDate(created), nil
}

// Delete снова открывает день для бронирований
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.closedDateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, closedDateRepo.ErrClosedDateNotFound) {
			s.logger.Warn("Delete: closed date id=%d not found", id)
			return ErrClosedDateNotFound
		}
		s.logger.Error("Delete: repository error for closed date id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: closed date id=%d removed", id)
	return nil
}
