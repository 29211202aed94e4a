package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/RiegL/ostia-visitas-report/internal/model"
	"github.com/RiegL/ostia-visitas-report/internal/repository"
	apperrors "github.com/RiegL/ostia-visitas-report/pkg/errors"
)

// patientColumns lists the legacy column set, both district spellings
// included so the mapper can resolve whichever one carries data.
const patientColumns = `id, name, address, district, distric, phones, status, observations, created_at, update_at`

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	row, err := patientToRow(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patient: %w", err)
	}

	query := `
		INSERT INTO patients (id, name, address, district, phones, status, observations, created_at, update_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + patientColumns

	var returned patientRow
	err = r.db.GetContext(ctx, &returned, query,
		row.ID,
		row.Name,
		row.Address,
		row.District,
		row.Phones,
		row.Status,
		row.Observations,
		row.CreatedAt,
		row.UpdateAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return returned.toModel(), nil
}

func (r *patientRepository) Get(ctx context.Context, id string) (*model.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`

	var row patientRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return row.toModel(), nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	row, err := patientToRow(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patient: %w", err)
	}

	query := `
		UPDATE patients
		SET name = $1, address = $2, district = $3, phones = $4, status = $5, observations = $6, update_at = $7
		WHERE id = $8
		RETURNING ` + patientColumns

	var returned patientRow
	err = r.db.GetContext(ctx, &returned, query,
		row.Name,
		row.Address,
		row.District,
		row.Phones,
		row.Status,
		row.Observations,
		row.UpdateAt,
		row.ID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return returned.toModel(), nil
}

// Delete is not idempotent: a second call for the same id reports not found.
func (r *patientRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NotFound("patient", nil)
	}
	return nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients ORDER BY created_at DESC`
	return r.selectPatients(ctx, query)
}

func (r *patientRepository) ListByStatus(ctx context.Context, status model.PatientStatus) ([]*model.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE status = $1 ORDER BY created_at DESC`
	return r.selectPatients(ctx, query, string(status))
}

func (r *patientRepository) selectPatients(ctx context.Context, query string, args ...interface{}) ([]*model.Patient, error) {
	var rows []patientRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	patients := make([]*model.Patient, 0, len(rows))
	for i := range rows {
		patients = append(patients, rows[i].toModel())
	}
	return patients, nil
}
