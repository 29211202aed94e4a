package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/RiegL/ostia-visitas-report/internal/model"
	"github.com/RiegL/ostia-visitas-report/internal/repository"
	apperrors "github.com/RiegL/ostia-visitas-report/pkg/errors"
)

const appointmentColumns = `id, patient_id, minister_id, minister_name, date, notes, created_at`

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error) {
	query := `
		INSERT INTO appointments (patient_id, minister_id, minister_name, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + appointmentColumns

	var returned appointmentRow
	err := r.db.GetContext(ctx, &returned, query,
		appointment.PatientID,
		appointment.MinisterID,
		appointment.MinisterName,
		appointment.Date,
		nullString(appointment.Notes),
		appointment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("patient already has a visit scheduled for this date", err)
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return returned.toModel(), nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	var row appointmentRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return row.toModel(), nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NotFound("appointment", nil)
	}
	return nil
}

func (r *appointmentRepository) ListByDate(ctx context.Context, date time.Time) ([]*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE date = $1::date ORDER BY created_at DESC`
	return r.selectAppointments(ctx, query, date)
}

func (r *appointmentRepository) ListForPatient(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE patient_id = $1 ORDER BY date DESC`
	return r.selectAppointments(ctx, query, patientID)
}

func (r *appointmentRepository) ListForPatientOnDate(ctx context.Context, patientID string, date time.Time) ([]*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE patient_id = $1 AND date = $2::date ORDER BY created_at DESC`
	return r.selectAppointments(ctx, query, patientID, date)
}

func (r *appointmentRepository) FindByPatientAndMinister(ctx context.Context, patientID string, ministerID int64) ([]*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE patient_id = $1 AND minister_id = $2 ORDER BY date DESC`
	return r.selectAppointments(ctx, query, patientID, ministerID)
}

func (r *appointmentRepository) selectAppointments(ctx context.Context, query string, args ...interface{}) ([]*model.Appointment, error) {
	var rows []appointmentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	appointments := make([]*model.Appointment, 0, len(rows))
	for i := range rows {
		appointments = append(appointments, rows[i].toModel())
	}
	return appointments, nil
}
