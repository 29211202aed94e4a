package postgres

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/RiegL/ostia-visitas-report/internal/model"
)

// Row types mirror the legacy hosted-backend schema, which several reworked
// revisions of the app wrote to with drifting column names: the timestamp
// column is `update_at`, the district column exists as both `district` and
// `distric`, and `phones` holds either a JSON array or a lone string.
// Mapping between that shape and the domain models lives here and is kept
// pure so it can be tested without a database.

type patientRow struct {
	ID           string         `db:"id"`
	Name         sql.NullString `db:"name"`
	Address      sql.NullString `db:"address"`
	District     sql.NullString `db:"district"`
	Distric      sql.NullString `db:"distric"`
	Phones       []byte         `db:"phones"`
	Status       sql.NullString `db:"status"`
	Observations sql.NullString `db:"observations"`
	CreatedAt    sql.NullTime   `db:"created_at"`
	UpdateAt     sql.NullTime   `db:"update_at"`
}

func (r *patientRow) toModel() *model.Patient {
	return &model.Patient{
		ID:           r.ID,
		Name:         r.Name.String,
		Address:      r.Address.String,
		District:     canonicalDistrict(r.District, r.Distric),
		Phones:       decodePhones(r.Phones),
		Status:       patientStatus(r.Status),
		Observations: r.Observations.String,
		CreatedAt:    timeOrNow(r.CreatedAt),
		UpdatedAt:    timeOrNow(r.UpdateAt),
	}
}

func patientToRow(p *model.Patient) (*patientRow, error) {
	phones, err := encodePhones(p.Phones)
	if err != nil {
		return nil, err
	}
	return &patientRow{
		ID:           p.ID,
		Name:         nullString(p.Name),
		Address:      nullString(p.Address),
		District:     nullString(p.District),
		Phones:       phones,
		Status:       nullString(string(p.Status)),
		Observations: nullString(p.Observations),
		CreatedAt:    sql.NullTime{Time: p.CreatedAt, Valid: !p.CreatedAt.IsZero()},
		UpdateAt:     sql.NullTime{Time: p.UpdatedAt, Valid: !p.UpdatedAt.IsZero()},
	}, nil
}

type ministerRow struct {
	ID        int64          `db:"id"`
	Name      sql.NullString `db:"name"`
	Phone     sql.NullString `db:"phone"`
	Email     sql.NullString `db:"email"`
	Username  sql.NullString `db:"username"`
	Password  sql.NullString `db:"password"`
	Role      sql.NullString `db:"role"`
	IsActive  sql.NullBool   `db:"isActive"`
	CreatedAt sql.NullTime   `db:"created_at"`
	UpdateAt  sql.NullTime   `db:"update_at"`
	LasLogin  sql.NullTime   `db:"lasLogin"`
}

func (r *ministerRow) toModel() *model.Minister {
	m := &model.Minister{
		ID:        r.ID,
		Name:      r.Name.String,
		Phone:     r.Phone.String,
		Email:     r.Email.String,
		Username:  r.Username.String,
		Password:  r.Password.String,
		Role:      ministerRole(r.Role),
		IsActive:  !r.IsActive.Valid || r.IsActive.Bool,
		CreatedAt: timeOrNow(r.CreatedAt),
		UpdatedAt: timeOrNow(r.UpdateAt),
	}
	if r.LasLogin.Valid {
		t := r.LasLogin.Time
		m.LastLogin = &t
	}
	return m
}

type appointmentRow struct {
	ID           int64          `db:"id"`
	PatientID    string         `db:"patient_id"`
	MinisterID   int64          `db:"minister_id"`
	MinisterName sql.NullString `db:"minister_name"`
	Date         time.Time      `db:"date"`
	Notes        sql.NullString `db:"notes"`
	CreatedAt    sql.NullTime   `db:"created_at"`
}

func (r *appointmentRow) toModel() *model.Appointment {
	return &model.Appointment{
		ID:           r.ID,
		PatientID:    r.PatientID,
		MinisterID:   r.MinisterID,
		MinisterName: r.MinisterName.String,
		Date:         r.Date,
		Notes:        r.Notes.String,
		CreatedAt:    timeOrNow(r.CreatedAt),
	}
}

// canonicalDistrict resolves the two legacy spellings, preferring the
// correctly named column when both carry data. The dual read stays until
// every deployment has run the normalization migration.
func canonicalDistrict(district, distric sql.NullString) string {
	if district.Valid && district.String != "" {
		return district.String
	}
	return distric.String
}

// decodePhones accepts a JSON array, a JSON string, or bare text; old
// writers stored a lone phone number without wrapping it in an array.
func decodePhones(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			return []string{}
		}
		return list
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return []string{}
		}
		return []string{single}
	}

	if s := strings.TrimSpace(string(raw)); s != "" {
		return []string{s}
	}
	return []string{}
}

func encodePhones(phones []string) ([]byte, error) {
	if phones == nil {
		phones = []string{}
	}
	return json.Marshal(phones)
}

func patientStatus(s sql.NullString) model.PatientStatus {
	switch model.PatientStatus(s.String) {
	case model.PatientStatusRecovered:
		return model.PatientStatusRecovered
	case model.PatientStatusDeceased:
		return model.PatientStatusDeceased
	default:
		return model.PatientStatusActive
	}
}

func ministerRole(s sql.NullString) model.MinisterRole {
	if model.MinisterRole(s.String) == model.MinisterRoleAdmin {
		return model.MinisterRoleAdmin
	}
	return model.MinisterRoleUser
}

// timeOrNow substitutes the current time for a missing timestamp. Imprecise,
// but it keeps callers from seeing zero times out of half-filled legacy rows.
func timeOrNow(t sql.NullTime) time.Time {
	if t.Valid {
		return t.Time
	}
	return time.Now()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
