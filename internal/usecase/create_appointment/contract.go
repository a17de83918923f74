package create_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	availableTimes "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_times"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// AvailabilityProvider пересчитывает доступные слоты врача на дату
// Реализация - usecase get_available_times; внутри транзакции его чтение
// записей врача выполняется с блокировкой FOR UPDATE
type AvailabilityProvider interface {
	Execute(ctx context.Context, req *availableTimes.Request) (*availableTimes.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// PatientRepository интерфейс репозитория пациентов
type PatientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
