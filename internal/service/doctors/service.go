package doctors

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-ClinicService/internal/service/doctors/models"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// Service сервис для работы с врачами клиники
type Service struct {
	doctorRepo DoctorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса врачей
func NewService(doctorRepo DoctorRepository, logger Logger) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// Upsert создает нового врача или обновляет существующего
// При обновлении проверяет, что врач принадлежит клинике из запроса
func (s *Service) Upsert(ctx context.Context, req *models.UpsertDoctorRequest) (*models.DoctorResponse, error) {
	s.logger.Info("Upsert: upserting doctor for clinic=%s by user=%s", req.ClinicID, req.UserID)

	fromTime, toTime, err := s.validateRequest(req)
	if err != nil {
		s.logger.Warn("Upsert: invalid request for clinic=%s: %v", req.ClinicID, err)
		return nil, err
	}

	doctorID := uuid.New()
	if req.ID != nil {
		// Обновление - врач должен существовать и принадлежать клинике
		existing, err := s.doctorRepo.GetByID(ctx, *req.ID)
		if err != nil {
			if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
				s.logger.Warn("Upsert: doctor id=%s not found", *req.ID)
				return nil, ErrDoctorNotFound
			}
			s.logger.Error("Upsert: repository error for doctor id=%s: %v", *req.ID, err)
			return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
		}
		if existing.ClinicID != req.ClinicID {
			// Врач другой клиники неотличим от несуществующего
			s.logger.Warn("Upsert: doctor id=%s belongs to another clinic", *req.ID)
			return nil, ErrDoctorNotFound
		}
		doctorID = *req.ID
	}

	doctor, err := s.doctorRepo.Upsert(ctx, req.ToDomainDoctor(doctorID, fromTime, toTime))
	if err != nil {
		if errors.Is(err, doctorRepo.ErrClinicMissing) {
			s.logger.Warn("Upsert: clinic id=%s not found", req.ClinicID)
			return nil, ErrClinicNotFound
		}
		s.logger.Error("Upsert: repository error for clinic=%s: %v", req.ClinicID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully upserted doctor id=%s for clinic=%s", doctor.ID, req.ClinicID)
	return models.FromDomainDoctor(doctor), nil
}

// List возвращает всех врачей клиники
func (s *Service) List(ctx context.Context, clinicID uuid.UUID) (*models.DoctorListResponse, error) {
	s.logger.Info("List: fetching doctors for clinic=%s", clinicID)

	doctors, err := s.doctorRepo.ListByClinic(ctx, clinicID)
	if err != nil {
		s.logger.Error("List: repository error for clinic=%s: %v", clinicID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d doctors for clinic=%s", len(doctors), clinicID)
	return models.FromDomainDoctorList(doctors), nil
}

// Delete удаляет врача клиники
// Проверяет права доступа - врач должен принадлежать клинике из запроса
func (s *Service) Delete(ctx context.Context, doctorID, clinicID uuid.UUID) error {
	s.logger.Info("Delete: deleting doctor id=%s for clinic=%s", doctorID, clinicID)

	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("Delete: doctor id=%s not found", doctorID)
			return ErrDoctorNotFound
		}
		s.logger.Error("Delete: repository error for doctor id=%s: %v", doctorID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if doctor.ClinicID != clinicID {
		s.logger.Warn("Delete: doctor id=%s belongs to another clinic", doctorID)
		return ErrDoctorNotFound
	}

	if err := s.doctorRepo.Delete(ctx, doctorID); err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("Delete: doctor id=%s not found during delete", doctorID)
			return ErrDoctorNotFound
		}
		s.logger.Error("Delete: repository error for doctor id=%s: %v", doctorID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted doctor id=%s", doctorID)
	return nil
}

// validateRequest проверяет поля запроса и парсит временные границы графика
func (s *Service) validateRequest(req *models.UpsertDoctorRequest) (types.TimeString, types.TimeString, error) {
	if req.ClinicID == uuid.Nil {
		return "", "", fmt.Errorf("%w: clinicId is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return "", "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return "", "", fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if req.Speciality == "" {
		return "", "", fmt.Errorf("%w: speciality is required", ErrInvalidInput)
	}
	if len(req.Speciality) > domain.MaxSpecialityLength {
		return "", "", fmt.Errorf("%w: speciality is too long", ErrInvalidInput)
	}
	if req.AppointmentPriceCents <= 0 {
		return "", "", fmt.Errorf("%w: appointmentPriceInCents must be positive", ErrInvalidInput)
	}
	if req.AvailableFromWeekday < domain.MinWeekday || req.AvailableFromWeekday > domain.MaxWeekday {
		return "", "", fmt.Errorf("%w: availableFromWeekDay must be between %d and %d",
			ErrInvalidAvailability, domain.MinWeekday, domain.MaxWeekday)
	}
	if req.AvailableToWeekday < domain.MinWeekday || req.AvailableToWeekday > domain.MaxWeekday {
		return "", "", fmt.Errorf("%w: availableToWeekDay must be between %d and %d",
			ErrInvalidAvailability, domain.MinWeekday, domain.MaxWeekday)
	}
	if req.AvailableFromWeekday > req.AvailableToWeekday {
		return "", "", fmt.Errorf("%w: availableFromWeekDay must not be after availableToWeekDay", ErrInvalidAvailability)
	}

	fromTime, err := types.NewTimeStringFromString(req.AvailableFromTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: availableFromTime: %v", ErrInvalidAvailability, err)
	}
	toTime, err := types.NewTimeStringFromString(req.AvailableToTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: availableToTime: %v", ErrInvalidAvailability, err)
	}
	if !fromTime.IsBefore(toTime) {
		return "", "", fmt.Errorf("%w: availableFromTime must be before availableToTime", ErrInvalidAvailability)
	}

	return fromTime, toTime, nil
}
