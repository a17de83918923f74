package get_available_times

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error)
}

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	// ListByDoctor получает ВСЕ записи врача без фильтра по дате
	// Фильтрация по календарному дню выполняется внутри usecase
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
