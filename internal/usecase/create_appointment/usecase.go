package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/appointment"
	patientRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/patient"
	availableTimes "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_times"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// UseCase use case для создания записи на приём с проверкой доступности слота
type UseCase struct {
	appointmentRepo AppointmentRepository
	patientRepo     PatientRepository
	availability    AvailabilityProvider
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	patientRepo PatientRepository,
	availability AvailabilityProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		availability:    availability,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи на приём
//
// Проверка доступности слота и вставка выполняются в одной сериализуемой
// транзакции: чтение записей врача блокирует их строки (FOR UPDATE), поэтому
// два конкурентных запроса не могут одновременно увидеть слот свободным.
// Ретраев нет: ошибка сериализации поднимается вызывающему как есть
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%s, clinic=%s, patient=%s, doctor=%s, date=%s, time=%s",
		req.UserID, req.ClinicID, req.PatientID, req.DoctorID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем пациента и его принадлежность клинике вызывающего
	patient, err := uc.patientRepo.GetByID(ctx, req.PatientID)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			uc.logger.Warn("CreateAppointment: patient id=%s not found", req.PatientID)
			return nil, ErrPatientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get patient id=%s: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
	}
	if patient.ClinicID != req.ClinicID {
		uc.logger.Warn("CreateAppointment: patient id=%s belongs to another clinic", req.PatientID)
		return nil, ErrPatientNotFound
	}

	var result *domain.Appointment

	// 3. Проверка доступности + вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Пересчитываем доступность врача на дату
		availability, err := uc.availability.Execute(txCtx, &availableTimes.Request{
			UserID:   req.UserID,
			ClinicID: req.ClinicID,
			DoctorID: req.DoctorID,
			Date:     req.Date,
		})
		if err != nil {
			if errors.Is(err, availableTimes.ErrDoctorNotFound) {
				uc.logger.Warn("CreateAppointment: doctor id=%s not found", req.DoctorID)
				return ErrDoctorNotFound
			}
			uc.logger.Error("CreateAppointment: failed to compute availability: %v", err)
			return fmt.Errorf("%w: failed to compute availability: %v", ErrInternal, err)
		}

		// 3.2. Выбранный слот должен присутствовать в выдаче И быть свободным
		if !slotIsAvailable(availability.Slots, req.StartTime) {
			uc.logger.Warn("CreateAppointment: slot %s is not available for doctor=%s on %s",
				req.StartTime, req.DoctorID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 3.3. Собираем абсолютную метку времени из даты и слота
		appointmentDate, err := domain.CombineDateTime(req.Date, req.StartTime)
		if err != nil {
			return fmt.Errorf("%w: failed to combine date and time: %v", ErrInternal, err)
		}

		// 3.4. Сохраняем запись; клиника берётся из контекста аутентификации
		appointment := &domain.Appointment{
			ID:         uuid.New(),
			ClinicID:   req.ClinicID,
			PatientID:  req.PatientID,
			DoctorID:   req.DoctorID,
			Date:       appointmentDate,
			PriceCents: req.PriceCents,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrDoctorMissing):
				return ErrDoctorNotFound
			case errors.Is(err, appointmentRepo.ErrPatientMissing):
				return ErrPatientNotFound
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{
		ID:         result.ID,
		ClinicID:   result.ClinicID,
		PatientID:  result.PatientID,
		DoctorID:   result.DoctorID,
		Date:       result.Date,
		PriceCents: result.PriceCents,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// slotIsAvailable проверяет, что слот присутствует в выдаче доступности и свободен
func slotIsAvailable(slots []domain.TimeSlot, startTime types.TimeString) bool {
	for _, slot := range slots {
		if slot.Value == startTime && slot.IsAvailable {
			return true
		}
	}
	return false
}
