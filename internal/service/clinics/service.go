package clinics

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	clinicRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/clinic"
	"github.com/m04kA/SMC-ClinicService/internal/service/clinics/models"
)

// Service сервис для работы с клиниками
type Service struct {
	clinicRepo ClinicRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиник
func NewService(clinicRepo ClinicRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		clinicRepo: clinicRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Create создает клинику и привязывает создавшего пользователя к ней
// Обе записи создаются в одной транзакции
func (s *Service) Create(ctx context.Context, req *models.CreateClinicRequest) (*models.ClinicResponse, error) {
	s.logger.Info("Create: creating clinic for user=%s", req.UserID)

	if req.UserID == uuid.Nil {
		s.logger.Warn("Create: missing user id")
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if req.Name == "" {
		s.logger.Warn("Create: missing clinic name for user=%s", req.UserID)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		s.logger.Warn("Create: clinic name too long for user=%s", req.UserID)
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	var clinic *domain.Clinic
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.clinicRepo.Create(ctx, &domain.Clinic{
			ID:   uuid.New(),
			Name: req.Name,
		})
		if err != nil {
			return fmt.Errorf("create clinic: %w", err)
		}

		if err := s.clinicRepo.LinkUser(ctx, req.UserID, created.ID); err != nil {
			return fmt.Errorf("link user to clinic: %w", err)
		}

		clinic = created
		return nil
	})
	if err != nil {
		s.logger.Error("Create: transaction failed for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created clinic id=%s for user=%s", clinic.ID, req.UserID)
	return models.FromDomainClinic(clinic), nil
}

// GetByID получает клинику по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ClinicResponse, error) {
	s.logger.Info("GetByID: fetching clinic id=%s", id)

	clinic, err := s.clinicRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clinicRepo.ErrClinicNotFound) {
			s.logger.Warn("GetByID: clinic id=%s not found", id)
			return nil, ErrClinicNotFound
		}
		s.logger.Error("GetByID: repository error for clinic id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched clinic id=%s", id)
	return models.FromDomainClinic(clinic), nil
}
