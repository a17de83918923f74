package doctors

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-ClinicService/internal/service/doctors/models"
	"github.com/m04kA/SMC-ClinicService/pkg/ptr"
)

type fakeDoctorRepo struct {
	doctors     map[uuid.UUID]*domain.Doctor
	upsertCalls int
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[uuid.UUID]*domain.Doctor)}
}

func (f *fakeDoctorRepo) Upsert(_ context.Context, doctor *domain.Doctor) (*domain.Doctor, error) {
	f.upsertCalls++
	f.doctors[doctor.ID] = doctor
	return doctor, nil
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Doctor, error) {
	doctor, ok := f.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	return doctor, nil
}

func (f *fakeDoctorRepo) ListByClinic(_ context.Context, clinicID uuid.UUID) ([]*domain.Doctor, error) {
	result := make([]*domain.Doctor, 0)
	for _, doctor := range f.doctors {
		if doctor.ClinicID == clinicID {
			result = append(result, doctor)
		}
	}
	return result, nil
}

func (f *fakeDoctorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.doctors[id]; !ok {
		return doctorRepo.ErrDoctorNotFound
	}
	delete(f.doctors, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpsertRequest(clinicID uuid.UUID) *models.UpsertDoctorRequest {
	return &models.UpsertDoctorRequest{
		UserID:                uuid.New(),
		ClinicID:              clinicID,
		Name:                  "Анна Соколова",
		Speciality:            "терапевт",
		AppointmentPriceCents: 250000,
		AvailableFromWeekday:  1,
		AvailableToWeekday:    5,
		AvailableFromTime:     "09:00:00",
		AvailableToTime:       "18:00:00",
	}
}

func TestUpsert_CreatesDoctor(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo, nopLogger{})
	clinicID := uuid.New()

	resp, err := svc.Upsert(context.Background(), validUpsertRequest(clinicID))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, clinicID, resp.ClinicID)
	assert.Equal(t, "09:00:00", resp.AvailableFromTime)
	assert.Equal(t, "18:00:00", resp.AvailableToTime)
	assert.Equal(t, 1, repo.upsertCalls)
}

func TestUpsert_ShortTimeFormNormalized(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo, nopLogger{})

	req := validUpsertRequest(uuid.New())
	req.AvailableFromTime = "09:00"
	req.AvailableToTime = "18:00"

	resp, err := svc.Upsert(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", resp.AvailableFromTime)
	assert.Equal(t, "18:00:00", resp.AvailableToTime)
}

func TestUpsert_UpdatesExistingDoctor(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo, nopLogger{})
	clinicID := uuid.New()

	created, err := svc.Upsert(context.Background(), validUpsertRequest(clinicID))
	require.NoError(t, err)

	update := validUpsertRequest(clinicID)
	update.ID = ptr.Ptr(created.ID)
	update.Name = "Анна Соколова-Петрова"
	update.AvatarImageURL = ptr.Ptr("https://cdn.example.com/avatars/sokolova.png")

	updated, err := svc.Upsert(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Анна Соколова-Петрова", updated.Name)
}

func TestUpsert_UpdateDoctorFromAnotherClinic(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Upsert(context.Background(), validUpsertRequest(uuid.New()))
	require.NoError(t, err)

	// Другая клиника пытается обновить чужого врача
	update := validUpsertRequest(uuid.New())
	update.ID = ptr.Ptr(created.ID)

	_, err = svc.Upsert(context.Background(), update)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestUpsert_ValidationMatrix(t *testing.T) {
	svc := NewService(newFakeDoctorRepo(), nopLogger{})

	tests := []struct {
		name    string
		mutate  func(*models.UpsertDoctorRequest)
		wantErr error
	}{
		{
			name:    "empty name",
			mutate:  func(r *models.UpsertDoctorRequest) { r.Name = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty speciality",
			mutate:  func(r *models.UpsertDoctorRequest) { r.Speciality = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name: "speciality too long",
			mutate: func(r *models.UpsertDoctorRequest) {
				r.Speciality = strings.Repeat("x", domain.MaxSpecialityLength+1)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero price",
			mutate:  func(r *models.UpsertDoctorRequest) { r.AppointmentPriceCents = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative price",
			mutate:  func(r *models.UpsertDoctorRequest) { r.AppointmentPriceCents = -1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "from weekday below range",
			mutate:  func(r *models.UpsertDoctorRequest) { r.AvailableFromWeekday = -1 },
			wantErr: ErrInvalidAvailability,
		},
		{
			name:    "to weekday above range",
			mutate:  func(r *models.UpsertDoctorRequest) { r.AvailableToWeekday = 7 },
			wantErr: ErrInvalidAvailability,
		},
		{
			name: "from weekday after to weekday",
			mutate: func(r *models.UpsertDoctorRequest) {
				r.AvailableFromWeekday = 5
				r.AvailableToWeekday = 1
			},
			wantErr: ErrInvalidAvailability,
		},
		{
			name:    "malformed from time",
			mutate:  func(r *models.UpsertDoctorRequest) { r.AvailableFromTime = "9am" },
			wantErr: ErrInvalidAvailability,
		},
		{
			name: "from time equals to time",
			mutate: func(r *models.UpsertDoctorRequest) {
				r.AvailableFromTime = "09:00:00"
				r.AvailableToTime = "09:00:00"
			},
			wantErr: ErrInvalidAvailability,
		},
		{
			name: "from time after to time",
			mutate: func(r *models.UpsertDoctorRequest) {
				r.AvailableFromTime = "18:00:00"
				r.AvailableToTime = "09:00:00"
			},
			wantErr: ErrInvalidAvailability,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpsertRequest(uuid.New())
			tt.mutate(req)

			_, err := svc.Upsert(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpsert_SingleWeekdayWindowAllowed(t *testing.T) {
	svc := NewService(newFakeDoctorRepo(), nopLogger{})

	// Врач работает только по средам
	req := validUpsertRequest(uuid.New())
	req.AvailableFromWeekday = 3
	req.AvailableToWeekday = 3

	_, err := svc.Upsert(context.Background(), req)
	assert.NoError(t, err)
}

func TestDelete_ChecksClinicOwnership(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo, nopLogger{})
	clinicID := uuid.New()

	created, err := svc.Upsert(context.Background(), validUpsertRequest(clinicID))
	require.NoError(t, err)

	// Чужая клиника получает not found, запись остаётся
	err = svc.Delete(context.Background(), created.ID, uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Len(t, repo.doctors, 1)

	require.NoError(t, svc.Delete(context.Background(), created.ID, clinicID))
	assert.Empty(t, repo.doctors)
}

func TestList_ReturnsOnlyClinicDoctors(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo, nopLogger{})
	clinicID := uuid.New()

	_, err := svc.Upsert(context.Background(), validUpsertRequest(clinicID))
	require.NoError(t, err)
	_, err = svc.Upsert(context.Background(), validUpsertRequest(uuid.New()))
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), clinicID)
	require.NoError(t, err)
	require.Len(t, resp.Doctors, 1)
	assert.Equal(t, clinicID, resp.Doctors[0].ClinicID)
}
