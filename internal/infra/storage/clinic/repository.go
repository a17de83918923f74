package clinic

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с клиниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиник
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую клинику
func (r *Repository) Create(ctx context.Context, clinic *domain.Clinic) (*domain.Clinic, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clinics").
		Columns("id", "name").
		Values(clinic.ID, clinic.Name).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	clinic.CreatedAt = createdAt.Time
	clinic.UpdatedAt = updatedAt.Time

	return clinic, nil
}

// GetByID получает клинику по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Clinic, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("clinics").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var clinic domain.Clinic
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&clinic.ID,
		&clinic.Name,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClinicNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan clinic: %v", ErrScanRow, err)
	}

	clinic.CreatedAt = createdAt.Time
	clinic.UpdatedAt = updatedAt.Time

	return &clinic, nil
}

// LinkUser привязывает пользователя к клинике (user_to_clinic)
func (r *Repository) LinkUser(ctx context.Context, userID, clinicID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("user_to_clinic").
		Columns("user_id", "clinic_id").
		Values(userID, clinicID).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: LinkUser - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LinkUser - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
