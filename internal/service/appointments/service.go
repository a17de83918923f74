package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/appointment"
	doctorRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/doctor"
	patientRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/patient"
	"github.com/m04kA/SMC-ClinicService/internal/service/appointments/models"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// Service сервис для работы с записями на приём
//
// Upsert здесь - легаси-вариант записи БЕЗ проверки доступности слота:
// две записи к одному врачу на одно время не отклоняются. Защищённое
// создание с пересчётом доступности живёт в usecase create_appointment
type Service struct {
	appointmentRepo AppointmentRepository
	doctorRepo      DoctorRepository
	patientRepo     PatientRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей на приём
func NewService(
	appointmentRepo AppointmentRepository,
	doctorRepo DoctorRepository,
	patientRepo PatientRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		logger:          logger,
	}
}

// Upsert создает запись на приём или переносит существующую
// Цена приёма снимается с текущей цены врача в момент вызова
func (s *Service) Upsert(ctx context.Context, req *models.UpsertAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Upsert: upserting appointment for clinic=%s, doctor=%s, patient=%s",
		req.ClinicID, req.DoctorID, req.PatientID)

	startTime, err := s.validateRequest(req)
	if err != nil {
		s.logger.Warn("Upsert: invalid request for clinic=%s: %v", req.ClinicID, err)
		return nil, err
	}

	// Пациент и врач должны существовать и принадлежать клинике
	patient, err := s.patientRepo.GetByID(ctx, req.PatientID)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("Upsert: patient id=%s not found", req.PatientID)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("Upsert: repository error for patient id=%s: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}
	if patient.ClinicID != req.ClinicID {
		s.logger.Warn("Upsert: patient id=%s belongs to another clinic", req.PatientID)
		return nil, ErrPatientNotFound
	}

	doctor, err := s.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("Upsert: doctor id=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("Upsert: repository error for doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}
	if doctor.ClinicID != req.ClinicID {
		s.logger.Warn("Upsert: doctor id=%s belongs to another clinic", req.DoctorID)
		return nil, ErrDoctorNotFound
	}

	appointmentDate, err := domain.CombineDateTime(req.Date, startTime)
	if err != nil {
		s.logger.Warn("Upsert: invalid time for clinic=%s: %v", req.ClinicID, err)
		return nil, fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}

	appointmentID := uuid.New()
	if req.ID != nil {
		// Перенос - запись должна существовать и принадлежать клинике
		existing, err := s.appointmentRepo.GetByID(ctx, *req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("Upsert: appointment id=%s not found", *req.ID)
				return nil, ErrAppointmentNotFound
			}
			s.logger.Error("Upsert: repository error for appointment id=%s: %v", *req.ID, err)
			return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
		}
		if existing.ClinicID != req.ClinicID {
			s.logger.Warn("Upsert: appointment id=%s belongs to another clinic", *req.ID)
			return nil, ErrAppointmentNotFound
		}
		appointmentID = *req.ID
	}

	appointment, err := s.appointmentRepo.Upsert(ctx, &domain.Appointment{
		ID:         appointmentID,
		ClinicID:   req.ClinicID,
		PatientID:  req.PatientID,
		DoctorID:   req.DoctorID,
		Date:       appointmentDate,
		PriceCents: doctor.AppointmentPriceCents,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrDoctorMissing):
			s.logger.Warn("Upsert: doctor id=%s missing on insert", req.DoctorID)
			return nil, ErrDoctorNotFound
		case errors.Is(err, appointmentRepo.ErrPatientMissing):
			s.logger.Warn("Upsert: patient id=%s missing on insert", req.PatientID)
			return nil, ErrPatientNotFound
		default:
			s.logger.Error("Upsert: repository error for clinic=%s: %v", req.ClinicID, err)
			return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Upsert: successfully upserted appointment id=%s for clinic=%s", appointment.ID, req.ClinicID)
	return models.FromDomainAppointment(appointment), nil
}

// List возвращает все записи клиники, ближайшие первыми
func (s *Service) List(ctx context.Context, clinicID uuid.UUID) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for clinic=%s", clinicID)

	appointments, err := s.appointmentRepo.ListByClinic(ctx, clinicID)
	if err != nil {
		s.logger.Error("List: repository error for clinic=%s: %v", clinicID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for clinic=%s", len(appointments), clinicID)
	return models.FromDomainAppointmentList(appointments), nil
}

// validateRequest проверяет поля запроса и парсит время слота
func (s *Service) validateRequest(req *models.UpsertAppointmentRequest) (types.TimeString, error) {
	if req.ClinicID == uuid.Nil {
		return "", fmt.Errorf("%w: clinicId is required", ErrInvalidInput)
	}
	if req.PatientID == uuid.Nil {
		return "", fmt.Errorf("%w: patientId is required", ErrInvalidInput)
	}
	if req.DoctorID == uuid.Nil {
		return "", fmt.Errorf("%w: doctorId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}
	return startTime, nil
}
