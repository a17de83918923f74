package doctor

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

const foreignKeyViolation = "23503"

var doctorColumns = []string{
	"id",
	"clinic_id",
	"name",
	"speciality",
	"avatar_image_url",
	"appointment_price_cents",
	"available_from_week_day",
	"available_to_week_day",
	"available_from_time",
	"available_to_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с врачами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория врачей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает врача или обновляет существующего по id
// Поведение повторяет INSERT ... ON CONFLICT (id) DO UPDATE:
// окно доступности и цена перезаписываются целиком
func (r *Repository) Upsert(ctx context.Context, doctor *domain.Doctor) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("doctors").
		Columns(
			"id",
			"clinic_id",
			"name",
			"speciality",
			"avatar_image_url",
			"appointment_price_cents",
			"available_from_week_day",
			"available_to_week_day",
			"available_from_time",
			"available_to_time",
		).
		Values(
			doctor.ID,
			doctor.ClinicID,
			doctor.Name,
			doctor.Speciality,
			doctor.AvatarImageURL,
			doctor.AppointmentPriceCents,
			doctor.AvailableFromWeekday,
			doctor.AvailableToWeekday,
			doctor.AvailableFromTime,
			doctor.AvailableToTime,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			speciality = EXCLUDED.speciality,
			avatar_image_url = EXCLUDED.avatar_image_url,
			appointment_price_cents = EXCLUDED.appointment_price_cents,
			available_from_week_day = EXCLUDED.available_from_week_day,
			available_to_week_day = EXCLUDED.available_to_week_day,
			available_from_time = EXCLUDED.available_from_time,
			available_to_time = EXCLUDED.available_to_time,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return nil, ErrClinicMissing
		}
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	doctor.CreatedAt = createdAt.Time
	doctor.UpdatedAt = updatedAt.Time

	return doctor, nil
}

// GetByID получает врача по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	doctor, err := r.scanDoctor(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	return doctor, nil
}

// ListByClinic получает всех врачей клиники, отсортированных по имени
func (r *Repository) ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(doctorColumns...).
		From("doctors").
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

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		doctor, err := r.scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByClinic - rows error: %v", ErrScanRow, err)
	}

	return doctors, nil
}

// Delete удаляет врача
// Каскадное удаление его записей на приём обеспечивается внешним ключом в БД
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("doctors").
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
		return ErrDoctorNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanDoctor(row rowScanner) (*domain.Doctor, error) {
	var doctor domain.Doctor
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&doctor.ID,
		&doctor.ClinicID,
		&doctor.Name,
		&doctor.Speciality,
		&doctor.AvatarImageURL,
		&doctor.AppointmentPriceCents,
		&doctor.AvailableFromWeekday,
		&doctor.AvailableToWeekday,
		&doctor.AvailableFromTime,
		&doctor.AvailableToTime,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan doctor: %v", ErrScanRow, err)
	}

	doctor.CreatedAt = createdAt.Time
	doctor.UpdatedAt = updatedAt.Time

	return &doctor, nil
}
