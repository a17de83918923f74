package clinics

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// ClinicRepository интерфейс репозитория клиник
type ClinicRepository interface {
	Create(ctx context.Context, clinic *domain.Clinic) (*domain.Clinic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Clinic, error)
	LinkUser(ctx context.Context, userID, clinicID uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
