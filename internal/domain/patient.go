package domain

import (
	"time"

	"github.com/google/uuid"
)

// PatientSex represents the sex of a patient
type PatientSex string

const (
	SexMale   PatientSex = "male"
	SexFemale PatientSex = "female"
	SexOther  PatientSex = "other"
)

// IsValid returns true if the value is one of the known enum values
func (s PatientSex) IsValid() bool {
	return s == SexMale || s == SexFemale || s == SexOther
}

// Patient represents a patient of a clinic
type Patient struct {
	ID          uuid.UUID
	ClinicID    uuid.UUID
	Name        string
	Email       string
	PhoneNumber string
	Sex         PatientSex
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
