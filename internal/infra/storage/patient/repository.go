package patient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicService/pkg/psqlbuilder"
)

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

var patientColumns = []string{
	"id",
	"clinic_id",
	"name",
	"email",
	"phone_number",
	"sex",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пациентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пациентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пациента
func (r *Repository) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("patients").
		Columns(
			"id",
			"clinic_id",
			"name",
			"email",
			"phone_number",
			"sex",
		).
		Values(
			patient.ID,
			patient.ClinicID,
			patient.Name,
			patient.Email,
			patient.PhoneNumber,
			patient.Sex,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	patient.CreatedAt = createdAt.Time
	patient.UpdatedAt = updatedAt.Time

	return patient, nil
}

// Update обновляет данные пациента
func (r *Repository) Update(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("patients").
		Set("name", patient.Name).
		Set("email", patient.Email).
		Set("phone_number", patient.PhoneNumber).
		Set("sex", patient.Sex).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": patient.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	patient.CreatedAt = createdAt.Time
	patient.UpdatedAt = updatedAt.Time

	return patient, nil
}

// GetByID получает пациента по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(patientColumns...).
		From("patients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanPatient(executor.QueryRowContext(ctx, query, args...))
}

// ListByClinic получает всех пациентов клиники, отсортированных по имени
func (r *Repository) ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(patientColumns...).
		From("patients").
		Where(squirrel.Eq{"clinic_id": clinicID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByClinic - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClinic - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	patients := make([]*domain.Patient, 0)
	for rows.Next() {
		patient, err := r.scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByClinic - rows error: %v", ErrScanRow, err)
	}

	return patients, nil
}

// Delete удаляет пациента
// Каскадное удаление его записей на приём обеспечивается внешним ключом в БД
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("patients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPatientNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanPatient(row rowScanner) (*domain.Patient, error) {
	var patient domain.Patient
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&patient.ID,
		&patient.ClinicID,
		&patient.Name,
		&patient.Email,
		&patient.PhoneNumber,
		&patient.Sex,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan patient: %v", ErrScanRow, err)
	}

	patient.CreatedAt = createdAt.Time
	patient.UpdatedAt = updatedAt.Time

	return &patient, nil
}

// mapConstraintError конвертирует нарушения ограничений PostgreSQL в доменные ошибки репозитория
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch pqErr.Code {
	case uniqueViolation:
		return ErrEmailTaken
	case foreignKeyViolation:
		return ErrClinicMissing
	default:
		return nil
	}
}
