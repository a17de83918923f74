package domain

import (
	"time"

	"github.com/google/uuid"
)

// Clinic represents a tenant: doctors, patients and appointments all belong
// to exactly one clinic
type Clinic struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
