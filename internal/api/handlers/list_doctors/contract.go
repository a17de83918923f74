package list_doctors

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/service/doctors/models"
)

type DoctorService interface {
	List(ctx context.Context, clinicID uuid.UUID) (*models.DoctorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
