package patients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	patientRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/patient"
	"github.com/m04kA/SMC-ClinicService/internal/service/patients/models"
)

// Service сервис для работы с пациентами клиники
type Service struct {
	patientRepo PatientRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса пациентов
func NewService(patientRepo PatientRepository, logger Logger) *Service {
	return &Service{
		patientRepo: patientRepo,
		logger:      logger,
	}
}

// Upsert создает нового пациента или обновляет существующего
// При обновлении проверяет, что пациент принадлежит клинике из запроса
func (s *Service) Upsert(ctx context.Context, req *models.UpsertPatientRequest) (*models.PatientResponse, error) {
	s.logger.Info("Upsert: upserting patient for clinic=%s by user=%s", req.ClinicID, req.UserID)

	if err := s.validateRequest(req); err != nil {
		s.logger.Warn("Upsert: invalid request for clinic=%s: %v", req.ClinicID, err)
		return nil, err
	}

	if req.ID == nil {
		patient, err := s.patientRepo.Create(ctx, req.ToDomainPatient(uuid.New()))
		if err != nil {
			return nil, s.mapRepoError("Upsert", req.ClinicID, err)
		}
		s.logger.Info("Upsert: successfully created patient id=%s for clinic=%s", patient.ID, req.ClinicID)
		return models.FromDomainPatient(patient), nil
	}

	// Обновление - пациент должен существовать и принадлежать клинике
	existing, err := s.patientRepo.GetByID(ctx, *req.ID)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("Upsert: patient id=%s not found", *req.ID)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("Upsert: repository error for patient id=%s: %v", *req.ID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}
	if existing.ClinicID != req.ClinicID {
		// Пациент другой клиники неотличим от несуществующего
		s.logger.Warn("Upsert: patient id=%s belongs to another clinic", *req.ID)
		return nil, ErrPatientNotFound
	}

	patient, err := s.patientRepo.Update(ctx, req.ToDomainPatient(*req.ID))
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("Upsert: patient id=%s not found during update", *req.ID)
			return nil, ErrPatientNotFound
		}
		return nil, s.mapRepoError("Upsert", req.ClinicID, err)
	}

	s.logger.Info("Upsert: successfully updated patient id=%s for clinic=%s", patient.ID, req.ClinicID)
	return models.FromDomainPatient(patient), nil
}

// List возвращает всех пациентов клиники
func (s *Service) List(ctx context.Context, clinicID uuid.UUID) (*models.PatientListResponse, error) {
	s.logger.Info("List: fetching patients for clinic=%s", clinicID)

	patients, err := s.patientRepo.ListByClinic(ctx, clinicID)
	if err != nil {
		s.logger.Error("List: repository error for clinic=%s: %v", clinicID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d patients for clinic=%s", len(patients), clinicID)
	return models.FromDomainPatientList(patients), nil
}

// Delete удаляет пациента клиники
// Проверяет права доступа - пациент должен принадлежать клинике из запроса
func (s *Service) Delete(ctx context.Context, patientID, clinicID uuid.UUID) error {
	s.logger.Info("Delete: deleting patient id=%s for clinic=%s", patientID, clinicID)

	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("Delete: patient id=%s not found", patientID)
			return ErrPatientNotFound
		}
		s.logger.Error("Delete: repository error for patient id=%s: %v", patientID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if patient.ClinicID != clinicID {
		s.logger.Warn("Delete: patient id=%s belongs to another clinic", patientID)
		return ErrPatientNotFound
	}

	if err := s.patientRepo.Delete(ctx, patientID); err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("Delete: patient id=%s not found during delete", patientID)
			return ErrPatientNotFound
		}
		s.logger.Error("Delete: repository error for patient id=%s: %v", patientID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted patient id=%s", patientID)
	return nil
}

// validateRequest проверяет поля запроса на создание/обновление пациента
func (s *Service) validateRequest(req *models.UpsertPatientRequest) error {
	if req.ClinicID == uuid.Nil {
		return fmt.Errorf("%w: clinicId is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}
	if req.PhoneNumber == "" {
		return fmt.Errorf("%w: phoneNumber is required", ErrInvalidInput)
	}
	if len(req.PhoneNumber) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phoneNumber is too long", ErrInvalidInput)
	}
	if !domain.PatientSex(req.Sex).IsValid() {
		return fmt.Errorf("%w: sex must be one of male, female, other", ErrInvalidInput)
	}
	return nil
}

// mapRepoError маппит ошибки репозитория в ошибки сервиса
func (s *Service) mapRepoError(op string, clinicID uuid.UUID, err error) error {
	switch {
	case errors.Is(err, patientRepo.ErrEmailTaken):
		s.logger.Warn("%s: email already in use for clinic=%s", op, clinicID)
		return ErrEmailTaken
	case errors.Is(err, patientRepo.ErrClinicMissing):
		s.logger.Warn("%s: clinic id=%s not found", op, clinicID)
		return ErrClinicNotFound
	default:
		s.logger.Error("%s: repository error for clinic=%s: %v", op, clinicID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
