package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// Appointment represents a booked appointment
//
// Date is one absolute timestamp (calendar date + time-of-day combined).
// PriceCents is a snapshot captured at booking time, so later doctor price
// changes do not retroactively alter past appointments.
type Appointment struct {
	ID         uuid.UUID
	ClinicID   uuid.UUID
	PatientID  uuid.UUID
	DoctorID   uuid.UUID
	Date       time.Time
	PriceCents int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TimeOfDay returns the appointment's time-of-day as "HH:MM:SS"
func (a *Appointment) TimeOfDay() types.TimeString {
	return types.NewTimeString(a.Date)
}

// IsOnDate returns true if the appointment falls on the given calendar date
// (date match is exact, not time-of-day-only)
func (a *Appointment) IsOnDate(date time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// CombineDateTime собирает абсолютную метку времени из календарной даты и
// времени суток слота; компоненты мельче секунды обнуляются
func CombineDateTime(date time.Time, timeOfDay types.TimeString) (time.Time, error) {
	hour, minute, second, err := timeOfDay.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, date.Location()), nil
}
