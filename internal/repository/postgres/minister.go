package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/RiegL/ostia-visitas-report/internal/model"
	"github.com/RiegL/ostia-visitas-report/internal/repository"
	apperrors "github.com/RiegL/ostia-visitas-report/pkg/errors"
)

// The minister table kept its hosted-backend shape: singular name and
// quoted camelCase columns ("isActive", "lasLogin" -- yes, lasLogin).
const ministerColumns = `id, name, phone, email, username, password, role, "isActive", created_at, update_at, "lasLogin"`

type ministerRepository struct {
	db *sqlx.DB
}

func NewMinisterRepository(db *sqlx.DB) repository.MinisterRepository {
	return &ministerRepository{db: db}
}

func (r *ministerRepository) Create(ctx context.Context, minister *model.Minister) (*model.Minister, error) {
	query := `
		INSERT INTO minister (name, phone, email, username, password, role, "isActive", created_at, update_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + ministerColumns

	var returned ministerRow
	err := r.db.GetContext(ctx, &returned, query,
		minister.Name,
		minister.Phone,
		nullString(minister.Email),
		minister.Username,
		minister.Password,
		string(minister.Role),
		minister.IsActive,
		minister.CreatedAt,
		minister.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("username already taken", err)
		}
		return nil, fmt.Errorf("failed to create minister: %w", err)
	}
	return returned.toModel(), nil
}

func (r *ministerRepository) Get(ctx context.Context, id int64) (*model.Minister, error) {
	query := `SELECT ` + ministerColumns + ` FROM minister WHERE id = $1`

	var row ministerRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("minister", err)
		}
		return nil, fmt.Errorf("failed to get minister: %w", err)
	}
	return row.toModel(), nil
}

func (r *ministerRepository) GetByUsername(ctx context.Context, username string) (*model.Minister, error) {
	query := `SELECT ` + ministerColumns + ` FROM minister WHERE username = $1`

	var row ministerRow
	if err := r.db.GetContext(ctx, &row, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get minister by username: %w", err)
	}
	return row.toModel(), nil
}

func (r *ministerRepository) Update(ctx context.Context, minister *model.Minister) (*model.Minister, error) {
	query := `
		UPDATE minister
		SET name = $1, phone = $2, email = $3, username = $4, password = $5, role = $6, "isActive" = $7, update_at = $8
		WHERE id = $9
		RETURNING ` + ministerColumns

	var returned ministerRow
	err := r.db.GetContext(ctx, &returned, query,
		minister.Name,
		minister.Phone,
		nullString(minister.Email),
		minister.Username,
		minister.Password,
		string(minister.Role),
		minister.IsActive,
		minister.UpdatedAt,
		minister.ID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("minister", err)
		}
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("username already taken", err)
		}
		return nil, fmt.Errorf("failed to update minister: %w", err)
	}
	return returned.toModel(), nil
}

func (r *ministerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM minister WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete minister: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NotFound("minister", nil)
	}
	return nil
}

func (r *ministerRepository) List(ctx context.Context) ([]*model.Minister, error) {
	query := `SELECT ` + ministerColumns + ` FROM minister ORDER BY created_at DESC`

	var rows []ministerRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list ministers: %w", err)
	}
	ministers := make([]*model.Minister, 0, len(rows))
	for i := range rows {
		ministers = append(ministers, rows[i].toModel())
	}
	return ministers, nil
}

func (r *ministerRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE minister SET "lasLogin" = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
