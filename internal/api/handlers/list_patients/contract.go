package list_patients

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/service/patients/models"
)

type PatientService interface {
	List(ctx context.Context, clinicID uuid.UUID) (*models.PatientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
