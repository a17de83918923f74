package delete_doctor

import (
	"context"

	"github.com/google/uuid"
)

type DoctorService interface {
	Delete(ctx context.Context, doctorID, clinicID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
