package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// Request модели

// UpsertDoctorRequest запрос на создание или обновление врача
// ID == nil означает создание, иначе обновление существующего врача
type UpsertDoctorRequest struct {
	ID                    *uuid.UUID `json:"id,omitempty"`
	UserID                uuid.UUID  `json:"-"`
	ClinicID              uuid.UUID  `json:"-"`
	Name                  string     `json:"name"`
	Speciality            string     `json:"speciality"`
	AvatarImageURL        *string    `json:"avatarImageUrl,omitempty"`
	AppointmentPriceCents int        `json:"appointmentPriceInCents"`
	AvailableFromWeekday  int        `json:"availableFromWeekDay"`
	AvailableToWeekday    int        `json:"availableToWeekDay"`
	AvailableFromTime     string     `json:"availableFromTime"` // "09:00:00"
	AvailableToTime       string     `json:"availableToTime"`   // "18:00:00"
}

// ToDomainDoctor конвертирует request в domain модель
// Временные границы уже должны быть провалидированы сервисом
func (r *UpsertDoctorRequest) ToDomainDoctor(id uuid.UUID, fromTime, toTime types.TimeString) *domain.Doctor {
	return &domain.Doctor{
		ID:                    id,
		ClinicID:              r.ClinicID,
		Name:                  r.Name,
		Speciality:            r.Speciality,
		AvatarImageURL:        r.AvatarImageURL,
		AppointmentPriceCents: r.AppointmentPriceCents,
		AvailableFromWeekday:  r.AvailableFromWeekday,
		AvailableToWeekday:    r.AvailableToWeekday,
		AvailableFromTime:     fromTime,
		AvailableToTime:       toTime,
	}
}

// Response модели

// DoctorResponse ответ с данными врача
type DoctorResponse struct {
	ID                    uuid.UUID `json:"id"`
	ClinicID              uuid.UUID `json:"clinicId"`
	Name                  string    `json:"name"`
	Speciality            string    `json:"speciality"`
	AvatarImageURL        *string   `json:"avatarImageUrl,omitempty"`
	AppointmentPriceCents int       `json:"appointmentPriceInCents"`
	AvailableFromWeekday  int       `json:"availableFromWeekDay"`
	AvailableToWeekday    int       `json:"availableToWeekDay"`
	AvailableFromTime     string    `json:"availableFromTime"`
	AvailableToTime       string    `json:"availableToTime"`
	CreatedAt             string    `json:"createdAt"`
	UpdatedAt             string    `json:"updatedAt"`
}

// DoctorListResponse ответ со списком врачей клиники
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

// FromDomainDoctor конвертирует domain модель в response
func FromDomainDoctor(d *domain.Doctor) *DoctorResponse {
	return &DoctorResponse{
		ID:                    d.ID,
		ClinicID:              d.ClinicID,
		Name:                  d.Name,
		Speciality:            d.Speciality,
		AvatarImageURL:        d.AvatarImageURL,
		AppointmentPriceCents: d.AppointmentPriceCents,
		AvailableFromWeekday:  d.AvailableFromWeekday,
		AvailableToWeekday:    d.AvailableToWeekday,
		AvailableFromTime:     d.AvailableFromTime.String(),
		AvailableToTime:       d.AvailableToTime.String(),
		CreatedAt:             d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:             d.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainDoctorList конвертирует список domain моделей в response
func FromDomainDoctorList(doctors []*domain.Doctor) *DoctorListResponse {
	resp := &DoctorListResponse{
		Doctors: make([]DoctorResponse, 0, len(doctors)),
	}
	for _, d := range doctors {
		resp.Doctors = append(resp.Doctors, *FromDomainDoctor(d))
	}
	return resp
}
