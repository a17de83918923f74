package delete_patient

import (
	"context"

	"github.com/google/uuid"
)

type PatientService interface {
	Delete(ctx context.Context, patientID, clinicID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
