package get_clinic

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/service/clinics/models"
)

type ClinicService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ClinicResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
