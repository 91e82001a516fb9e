package cabins

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	cabinRepo "github.com/m04kA/BeachClub-ReservationService/internal/infra/storage/cabin"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/cabins/models"
)

// Service сервис каталога кабин
type Service struct {
	cabinRepo CabinRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса кабин
func NewService(cabinRepo CabinRepository, logger Logger) *Service {
	return &Service{
		cabinRepo: cabinRepo,
		logger:    logger,
	}
}

// List возвращает кабины; onlyActive скрывает выключенные (публичный каталог)
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.CabinListResponse, error) {
	cabins, err := s.cabinRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCabinList(cabins), nil
}

// GetByID возвращает кабину; при onlyActive выключенная кабина считается не найденной
func (s *Service) GetByID(ctx context.Context, id int64, onlyActive bool) (*models.CabinResponse, error) {
	cabin, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if onlyActive && !cabin.IsActive {
		s.logger.Warn("GetByID: cabin id=%d is inactive", id)
		return nil, ErrCabinNotFound
	}

	return models.FromDomainCabin(cabin), nil
}

// Create добавляет кабину в каталог
func (s *Service) Create(ctx context.Context, req *models.CreateCabinRequest) (*models.CabinResponse, error) {
	cabin := req.ToDomain()
	cabin.Name = strings.TrimSpace(cabin.Name)

	if err := validateCabin(cabin); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.cabinRepo.Create(ctx, cabin)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: cabin id=%d created", created.ID)
	return models.FromDomainCabin(created), nil
}

// Update частично обновляет кабину
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCabinRequest) (*models.CabinResponse, error) {
	cabin, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(cabin)
	cabin.Name = strings.TrimSpace(cabin.Name)

	if err := validateCabin(cabin); err != nil {
		s.logger.Warn("Update: validation failed for cabin id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.cabinRepo.Update(ctx, cabin)
	if err != nil {
		if errors.Is(err, cabinRepo.ErrCabinNotFound) {
			return nil, ErrCabinNotFound
		}
		s.logger.Error("Update: repository error for cabin id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: cabin id=%d updated", id)
	return models.FromDomainCabin(updated), nil
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Cabin, error) {
	cabin, err := s.cabinRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, cabinRepo.ErrCabinNotFound) {
			s.logger.Warn("GetByID: cabin id=%d not found", id)
			return nil, ErrCabinNotFound
		}
		s.logger.Error("GetByID: repository error for cabin id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return cabin, nil
}

func validateCabin(c *domain.Cabin) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(c.Name)) > domain.MaxCabinNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxCabinNameLength)
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if c.HourlyPriceCents <= 0 {
		return fmt.Errorf("%w: hourly price must be positive", ErrInvalidInput)
	}
	return nil
}
