package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// Request модели

// CreateClinicRequest запрос на создание клиники
type CreateClinicRequest struct {
	UserID uuid.UUID `json:"-"`
	Name   string    `json:"name"`
}

// Response модели

// ClinicResponse ответ с данными клиники
type ClinicResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// FromDomainClinic конвертирует domain модель в response
func FromDomainClinic(c *domain.Clinic) *ClinicResponse {
	return &ClinicResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: c.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
