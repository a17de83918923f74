package upsert_patient

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/internal/service/patients/models"
)

type PatientService interface {
	Upsert(ctx context.Context, req *models.UpsertPatientRequest) (*models.PatientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
