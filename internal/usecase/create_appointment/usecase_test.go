package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	availableTimes "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_times"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// fakeAppointmentStore хранит записи в памяти и реализует репозитории
// обоих usecase-ов: создание пишет в store, пересчёт доступности читает из него
type fakeAppointmentStore struct {
	appointments []*domain.Appointment
	createCalls  int
}

func (f *fakeAppointmentStore) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	f.createCalls++
	f.appointments = append(f.appointments, appointment)
	return appointment, nil
}

func (f *fakeAppointmentStore) ListByDoctor(_ context.Context, _ uuid.UUID) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeDoctorRepo struct {
	doctor *domain.Doctor
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Doctor, error) {
	return f.doctor, nil
}

type fakePatientRepo struct {
	patient *domain.Patient
	err     error
}

func (f *fakePatientRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Patient, error) {
	return f.patient, f.err
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2025-10-14 - вторник
var tuesday = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

type fixture struct {
	clinicID uuid.UUID
	doctor   *domain.Doctor
	patient  *domain.Patient
	store    *fakeAppointmentStore
	txMgr    *fakeTxManager
	uc       *UseCase
}

func newFixture() *fixture {
	clinicID := uuid.New()
	doctor := &domain.Doctor{
		ID:                    uuid.New(),
		ClinicID:              clinicID,
		Name:                  "Анна Соколова",
		Speciality:            "терапевт",
		AppointmentPriceCents: 250000,
		AvailableFromWeekday:  1,
		AvailableToWeekday:    5,
		AvailableFromTime:     "09:00:00",
		AvailableToTime:       "18:00:00",
	}
	patient := &domain.Patient{
		ID:       uuid.New(),
		ClinicID: clinicID,
		Name:     "Иван Петров",
	}

	store := &fakeAppointmentStore{}
	txMgr := &fakeTxManager{}

	// Реальный usecase вычисления доступности поверх фейковых репозиториев:
	// создание записи и её последующая видимость проверяются сквозным путём
	availabilityUC := availableTimes.NewUseCase(
		&fakeDoctorRepo{doctor: doctor},
		store,
		nopLogger{},
	)

	uc := NewUseCase(store, &fakePatientRepo{patient: patient}, availabilityUC, txMgr, nopLogger{})

	return &fixture{
		clinicID: clinicID,
		doctor:   doctor,
		patient:  patient,
		store:    store,
		txMgr:    txMgr,
		uc:       uc,
	}
}

func (f *fixture) request(startTime types.TimeString) *Request {
	return &Request{
		UserID:     uuid.New(),
		ClinicID:   f.clinicID,
		PatientID:  f.patient.ID,
		DoctorID:   f.doctor.ID,
		Date:       tuesday,
		StartTime:  startTime,
		PriceCents: f.doctor.AppointmentPriceCents,
	}
}

func TestExecute_CreatesAppointmentOnFreeSlot(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), f.request("09:30:00"))
	require.NoError(t, err)

	assert.Equal(t, f.clinicID, resp.ClinicID)
	assert.Equal(t, f.patient.ID, resp.PatientID)
	assert.Equal(t, f.doctor.ID, resp.DoctorID)
	assert.Equal(t, 250000, resp.PriceCents)
	assert.Equal(t, time.Date(2025, 10, 14, 9, 30, 0, 0, time.UTC), resp.Date)

	assert.Equal(t, 1, f.txMgr.calls)
	assert.Equal(t, 1, f.store.createCalls)
}

func TestExecute_SecondBookingOnSameSlotRejected(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), f.request("10:00:00"))
	require.NoError(t, err)

	// Повторная попытка на тот же слот: пересчёт видит запись и отклоняет
	_, err = f.uc.Execute(context.Background(), f.request("10:00:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, f.store.createCalls, "no insert on rejected slot")

	// Соседний слот остаётся свободным
	_, err = f.uc.Execute(context.Background(), f.request("10:30:00"))
	assert.NoError(t, err)
}

func TestExecute_SlotOutsideWorkingWindow(t *testing.T) {
	f := newFixture()

	// 08:30:00 раньше начала окна врача
	_, err := f.uc.Execute(context.Background(), f.request("08:30:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.store.createCalls)
}

func TestExecute_WeekdayOutsideWindow(t *testing.T) {
	f := newFixture()

	req := f.request("10:00:00")
	req.Date = time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC) // воскресенье

	// Пустая выдача доступности означает недоступный слот
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.store.createCalls)
}

func TestExecute_OffGridTimeRejected(t *testing.T) {
	f := newFixture()

	// Валидное время, но мимо сетки слотов
	_, err := f.uc.Execute(context.Background(), f.request("09:15:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.store.createCalls)
}

func TestExecute_PatientFromAnotherClinic(t *testing.T) {
	f := newFixture()
	f.patient.ClinicID = uuid.New()

	// Чужой пациент неотличим от несуществующего
	_, err := f.uc.Execute(context.Background(), f.request("10:00:00"))
	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.Zero(t, f.txMgr.calls, "transaction must not start")
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing clinic", mutate: func(r *Request) { r.ClinicID = uuid.Nil }},
		{name: "missing patient", mutate: func(r *Request) { r.PatientID = uuid.Nil }},
		{name: "missing doctor", mutate: func(r *Request) { r.DoctorID = uuid.Nil }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed time", mutate: func(r *Request) { r.StartTime = "9am" }},
		{name: "zero price", mutate: func(r *Request) { r.PriceCents = 0 }},
		{name: "negative price", mutate: func(r *Request) { r.PriceCents = -100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request("10:00:00")
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Zero(t, f.store.createCalls)
}
