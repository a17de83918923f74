package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// Request модели

// UpsertPatientRequest запрос на создание или обновление пациента
// ID == nil означает создание, иначе обновление существующего пациента
type UpsertPatientRequest struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	UserID      uuid.UUID  `json:"-"`
	ClinicID    uuid.UUID  `json:"-"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	Sex         string     `json:"sex"` // male | female | other
}

// ToDomainPatient конвертирует request в domain модель
func (r *UpsertPatientRequest) ToDomainPatient(id uuid.UUID) *domain.Patient {
	return &domain.Patient{
		ID:          id,
		ClinicID:    r.ClinicID,
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Sex:         domain.PatientSex(r.Sex),
	}
}

// Response модели

// PatientResponse ответ с данными пациента
type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	ClinicID    uuid.UUID `json:"clinicId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Sex         string    `json:"sex"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

// PatientListResponse ответ со списком пациентов клиники
type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
}

// FromDomainPatient конвертирует domain модель в response
func FromDomainPatient(p *domain.Patient) *PatientResponse {
	return &PatientResponse{
		ID:          p.ID,
		ClinicID:    p.ClinicID,
		Name:        p.Name,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Sex:         string(p.Sex),
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainPatientList конвертирует список domain моделей в response
func FromDomainPatientList(patients []*domain.Patient) *PatientListResponse {
	resp := &PatientListResponse{
		Patients: make([]PatientResponse, 0, len(patients)),
	}
	for _, p := range patients {
		resp.Patients = append(resp.Patients, *FromDomainPatient(p))
	}
	return resp
}
