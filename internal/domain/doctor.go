package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// Doctor represents a doctor with a configured availability window
//
// The window is a weekday range (0 = Sunday .. 6 = Saturday, inclusive,
// FromWeekday <= ToWeekday, no wrap-around) plus a time-of-day range
// (FromTime < ToTime, both inclusive for slot filtering).
// The upsert path validates these invariants; availability computation trusts them.
type Doctor struct {
	ID             uuid.UUID
	ClinicID       uuid.UUID
	Name           string
	Speciality     string
	AvatarImageURL *string

	// Price snapshot source: copied onto each appointment at booking time
	AppointmentPriceCents int

	AvailableFromWeekday int
	AvailableToWeekday   int
	AvailableFromTime    types.TimeString
	AvailableToTime      types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailableOnWeekday returns true if weekday falls inside the doctor's
// weekday window (inclusive)
func (d *Doctor) IsAvailableOnWeekday(weekday int) bool {
	return weekday >= d.AvailableFromWeekday && weekday <= d.AvailableToWeekday
}

// WorksAt returns true if the time-of-day slot falls inside the doctor's
// time window, both boundaries inclusive
func (d *Doctor) WorksAt(slot types.TimeString) bool {
	return slot.InRange(d.AvailableFromTime, d.AvailableToTime)
}
