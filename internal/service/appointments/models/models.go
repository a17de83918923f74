package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// Request модели

// UpsertAppointmentRequest запрос на создание или перенос записи на приём
// ID == nil означает создание, иначе обновление существующей записи
//
// Легаси-вариант: слот НЕ проверяется на доступность, возможно пересечение
// с другими записями того же врача
type UpsertAppointmentRequest struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	UserID    uuid.UUID  `json:"-"`
	ClinicID  uuid.UUID  `json:"-"`
	PatientID uuid.UUID  `json:"patientId"`
	DoctorID  uuid.UUID  `json:"doctorId"`
	Date      time.Time  `json:"-"`
	DateRaw   string     `json:"date"` // "2025-10-15"
	StartTime string     `json:"time"` // "09:30:00"
}

// Response модели

// AppointmentResponse ответ с данными записи на приём
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

// AppointmentListResponse ответ со списком записей клиники
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         a.ID,
		ClinicID:   a.ClinicID,
		PatientID:  a.PatientID,
		DoctorID:   a.DoctorID,
		Date:       a.Date.Format(domain.DateFormat),
		Time:       a.TimeOfDay().String(),
		PriceCents: a.PriceCents,
		CreatedAt:  a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  a.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a))
	}
	return resp
}
