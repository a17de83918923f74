package upsert_doctor

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/internal/service/doctors/models"
)

type DoctorService interface {
	Upsert(ctx context.Context, req *models.UpsertDoctorRequest) (*models.DoctorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
