package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	createAppointment "github.com/m04kA/SMC-ClinicService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
// Идентификатор клиники берётся из контекста аутентификации, не из тела
type CreateAppointmentRequest struct {
	PatientID  uuid.UUID `json:"patientId"`
	DoctorID   uuid.UUID `json:"doctorId"`
	Date       string    `json:"date"` // "2025-10-15"
	Time       string    `json:"time"` // "09:30:00"
	PriceCents int       `json:"appointmentPriceInCents"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         uuid.UUID `json:"id"`
	ClinicID   uuid.UUID `json:"clinicId"`
	PatientID  uuid.UUID `json:"patientId"`
	DoctorID   uuid.UUID `json:"doctorId"`
	Date       string    `json:"date"` // "2025-10-15"
	Time       string    `json:"time"` // "09:30:00"
	PriceCents int       `json:"appointmentPriceInCents"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID, clinicID uuid.UUID) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:     userID,
		ClinicID:   clinicID,
		PatientID:  r.PatientID,
		DoctorID:   r.DoctorID,
		Date:       date,
		StartTime:  startTime,
		PriceCents: r.PriceCents,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		ClinicID:   resp.ClinicID,
		PatientID:  resp.PatientID,
		DoctorID:   resp.DoctorID,
		Date:       resp.Date.Format(domain.DateFormat),
		Time:       types.NewTimeString(resp.Date).String(),
		PriceCents: resp.PriceCents,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
