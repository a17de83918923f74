package get_available_times

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

type fakeDoctorRepo struct {
	doctor *domain.Doctor
	err    error
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Doctor, error) {
	return f.doctor, f.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) ListByDoctor(_ context.Context, _ uuid.UUID) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestDoctor(clinicID uuid.UUID) *domain.Doctor {
	return &domain.Doctor{
		ID:                    uuid.New(),
		ClinicID:              clinicID,
		Name:                  "Анна Соколова",
		Speciality:            "терапевт",
		AppointmentPriceCents: 250000,
		AvailableFromWeekday:  1, // понедельник
		AvailableToWeekday:    5, // пятница
		AvailableFromTime:     "09:00:00",
		AvailableToTime:       "18:00:00",
	}
}

func newRequest(clinicID, doctorID uuid.UUID, date time.Time) *Request {
	return &Request{
		UserID:   uuid.New(),
		ClinicID: clinicID,
		DoctorID: doctorID,
		Date:     date,
	}
}

// 2025-10-14 - вторник
var tuesday = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

// 2025-10-12 - воскресенье
var sunday = time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)

func TestExecute_FullWindowAvailable(t *testing.T) {
	clinicID := uuid.New()
	doctor := newTestDoctor(clinicID)

	uc := NewUseCase(
		&fakeDoctorRepo{doctor: doctor},
		&fakeAppointmentRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), newRequest(clinicID, doctor.ID, tuesday))
	require.NoError(t, err)

	// Окно 09:00:00-18:00:00 с шагом 30 минут, обе границы включительно
	require.Len(t, resp.Slots, 19)
	assert.Equal(t, types.TimeString("09:00:00"), resp.Slots[0].Value)
	assert.Equal(t, types.TimeString("18:00:00"), resp.Slots[len(resp.Slots)-1].Value)

	for i, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable, "slot %s must be available", slot.Value)
		if i > 0 {
			assert.True(t, resp.Slots[i-1].Value.IsBefore(slot.Value))
		}
	}
}

func TestExecute_WeekdayOutsideWindow(t *testing.T) {
	clinicID := uuid.New()
	doctor := newTestDoctor(clinicID)

	uc := NewUseCase(
		&fakeDoctorRepo{doctor: doctor},
		&fakeAppointmentRepo{},
		nopLogger{},
	)

	// Воскресенье вне окна [понедельник, пятница] - пустой список, не ошибка
	resp, err := uc.Execute(context.Background(), newRequest(clinicID, doctor.ID, sunday))
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_BookedSlotMarkedUnavailable(t *testing.T) {
	clinicID := uuid.New()
	doctor := newTestDoctor(clinicID)

	appointments := []*domain.Appointment{
		{
			ID:       uuid.New(),
			ClinicID: clinicID,
			DoctorID: doctor.ID,
			Date:     time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC),
		},
	}

	uc := NewUseCase(
		&fakeDoctorRepo{doctor: doctor},
		&fakeAppointmentRepo{appointments: appointments},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), newRequest(clinicID, doctor.ID, tuesday))
	require.NoError(t, err)
	require.Len(t, resp.Slots, 19)

	for _, slot := range resp.Slots {
		if slot.Value == "09:00:00" {
			assert.False(t, slot.IsAvailable, "booked slot must be unavailable")
		} else {
			assert.True(t, slot.IsAvailable, "slot %s must stay available", slot.Value)
		}
	}
}

func TestExecute_AppointmentOnOtherDateIgnored(t *testing.T) {
	clinicID := uuid.New()
	doctor := newTestDoctor(clinicID)

	// Запись на СЛЕДУЮЩИЙ день с тем же временем суток
	appointments := []*domain.Appointment{
		{
			ID:       uuid.New(),
			ClinicID: clinicID,
			DoctorID: doctor.ID,
			Date:     time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC),
		},
	}

	uc := NewUseCase(
		&fakeDoctorRepo{doctor: doctor},
		&fakeAppointmentRepo{appointments: appointments},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), newRequest(clinicID, doctor.ID, tuesday))
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable, "slot %s must be available", slot.Value)
	}
}

func TestExecute_InclusiveBoundaries(t *testing.T) {
	clinicID := uuid.New()
	doctor := newTestDoctor(clinicID)
	doctor.AvailableFromTime = "10:00:00"
	doctor.AvailableToTime = "10:30:00"

	uc := NewUseCase(
		&fakeDoctorRepo{doctor: doctor},
		&fakeAppointmentRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), newRequest(clinicID, doctor.ID, tuesday))
	require.NoError(t, err)

	// Ровно обе границы окна
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, types.TimeString("10:00:00"), resp.Slots[0].Value)
	assert.Equal(t, types.TimeString("10:30:00"), resp.Slots[1].Value)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeDoctorRepo{err: doctorRepo.ErrDoctorNotFound},
		&fakeAppointmentRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), newRequest(uuid.New(), uuid.New(), tuesday))
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_DoctorFromAnotherClinic(t *testing.T) {
	doctor := newTestDoctor(uuid.New())

	uc := NewUseCase(
		&fakeDoctorRepo{doctor: doctor},
		&fakeAppointmentRepo{},
		nopLogger{},
	)

	// Чужой врач неотличим от несуществующего
	_, err := uc.Execute(context.Background(), newRequest(uuid.New(), doctor.ID, tuesday))
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeDoctorRepo{}, &fakeAppointmentRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing clinic", req: &Request{DoctorID: uuid.New(), Date: tuesday}},
		{name: "missing doctor", req: &Request{ClinicID: uuid.New(), Date: tuesday}},
		{name: "missing date", req: &Request{ClinicID: uuid.New(), DoctorID: uuid.New()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
