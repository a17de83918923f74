package get_available_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/doctor"
)

// UseCase use case для вычисления доступных слотов врача на дату
type UseCase struct {
	doctorRepo      DoctorRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorRepo DoctorRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Если день недели вне окна врача - возвращается ПУСТОЙ список слотов,
// а не ошибка и не список целиком занятых слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: user=%s, clinic=%s, doctor=%s, date=%s",
		req.UserID, req.ClinicID, req.DoctorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем врача
	doctor, err := uc.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("GetAvailableTimes: doctor id=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to get doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 3. Проверяем принадлежность врача клинике вызывающего
	// Чужой врач неотличим от несуществующего, чтобы не раскрывать данные между клиниками
	if doctor.ClinicID != req.ClinicID {
		uc.logger.Warn("GetAvailableTimes: doctor id=%s belongs to another clinic", req.DoctorID)
		return nil, ErrDoctorNotFound
	}

	// 4. День недели вне окна врача - пустой список
	weekday := int(req.Date.Weekday())
	if !doctor.IsAvailableOnWeekday(weekday) {
		uc.logger.Info("GetAvailableTimes: doctor id=%s is not available on weekday=%d", req.DoctorID, weekday)
		return &Response{
			DoctorID: req.DoctorID,
			Date:     req.Date,
			Slots:    []domain.TimeSlot{},
		}, nil
	}

	// 5. Получаем все записи врача (фильтрация по дню - внутри buildDaySlots)
	appointments, err := uc.appointmentRepo.ListByDoctor(ctx, req.DoctorID)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to list appointments for doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 6. Строим слоты с признаком доступности
	slots := buildDaySlots(doctor, req.Date, appointments)

	uc.logger.Info("GetAvailableTimes: generated %d slots for doctor=%s, date=%s",
		len(slots), req.DoctorID, req.Date.Format(domain.DateFormat))

	return &Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}
