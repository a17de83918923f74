package create_appointment

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
// Ошибки валидации формируются по-полевым сообщением и не трогают хранилище
func validateRequest(req *Request) error {
	if req.ClinicID == uuid.Nil {
		return fmt.Errorf("%w: clinicID is required", ErrInvalidInput)
	}

	if req.PatientID == uuid.Nil {
		return fmt.Errorf("%w: patientID is required", ErrInvalidInput)
	}

	if req.DoctorID == uuid.Nil {
		return fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.PriceCents <= 0 {
		return fmt.Errorf("%w: priceCents must be positive", ErrInvalidInput)
	}

	return nil
}
