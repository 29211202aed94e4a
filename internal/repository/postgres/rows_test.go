package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiegL/ostia-visitas-report/internal/model"
)

func TestDecodePhones(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []string
	}{
		{"json array", []byte(`["1234-5678","9999-0000"]`), []string{"1234-5678", "9999-0000"}},
		{"json string", []byte(`"1234-5678"`), []string{"1234-5678"}},
		{"bare text", []byte(`1234-5678`), []string{"1234-5678"}},
		{"empty json string", []byte(`""`), []string{}},
		{"json null", []byte(`null`), []string{}},
		{"nil", nil, []string{}},
		{"empty array", []byte(`[]`), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodePhones(tt.raw))
		})
	}
}

func TestCanonicalDistrict(t *testing.T) {
	valid := func(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }
	null := sql.NullString{}

	tests := []struct {
		name             string
		district, legacy sql.NullString
		want             string
	}{
		{"modern column only", valid("Centro"), null, "Centro"},
		{"legacy column only", null, valid("Centro"), "Centro"},
		{"modern wins when both set", valid("Centro"), valid("Norte"), "Centro"},
		{"empty modern falls back", valid(""), valid("Norte"), "Norte"},
		{"neither", null, null, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalDistrict(tt.district, tt.legacy))
		})
	}
}

func TestPatientRowToModelDefaults(t *testing.T) {
	row := &patientRow{ID: "abc-123"}

	p := row.toModel()

	assert.Equal(t, "abc-123", p.ID)
	assert.Equal(t, "", p.Name)
	assert.Equal(t, "", p.Address)
	assert.Equal(t, "", p.District)
	assert.Equal(t, []string{}, p.Phones)
	assert.Equal(t, model.PatientStatusActive, p.Status)
	assert.WithinDuration(t, time.Now(), p.CreatedAt, time.Second)
	assert.WithinDuration(t, time.Now(), p.UpdatedAt, time.Second)
}

func TestPatientRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	patient := &model.Patient{
		ID:           "id-1",
		Name:         "Maria",
		Address:      "Rua A, 10",
		District:     "Centro",
		Phones:       []string{"1234-5678"},
		Status:       model.PatientStatusRecovered,
		Observations: "prefers mornings",
		CreatedAt:    created,
		UpdatedAt:    updated,
	}

	row, err := patientToRow(patient)
	require.NoError(t, err)

	got := row.toModel()
	assert.Equal(t, patient, got)
}

func TestPatientRoundTripFromLegacySpelling(t *testing.T) {
	// A row written by a revision that only knew the misspelled column must
	// come back with the canonical district, and re-encoding must target the
	// canonical column.
	row := &patientRow{
		ID:      "id-2",
		Name:    sql.NullString{String: "João", Valid: true},
		Distric: sql.NullString{String: "Norte", Valid: true},
		Phones:  []byte(`"1111-2222"`),
	}

	p := row.toModel()
	assert.Equal(t, "Norte", p.District)
	assert.Equal(t, []string{"1111-2222"}, p.Phones)

	back, err := patientToRow(p)
	require.NoError(t, err)
	assert.Equal(t, "Norte", back.District.String)
	assert.True(t, back.District.Valid)
	assert.False(t, back.Distric.Valid)
}

func TestMinisterRowDefaults(t *testing.T) {
	row := &ministerRow{ID: 7, Username: sql.NullString{String: "pedro", Valid: true}}

	m := row.toModel()

	assert.Equal(t, int64(7), m.ID)
	assert.Equal(t, "pedro", m.Username)
	assert.Equal(t, model.MinisterRoleUser, m.Role)
	assert.True(t, m.IsActive)
	assert.Nil(t, m.LastLogin)
}

func TestMinisterRowAdminAndLastLogin(t *testing.T) {
	lastLogin := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)
	row := &ministerRow{
		ID:       1,
		Role:     sql.NullString{String: "admin", Valid: true},
		IsActive: sql.NullBool{Bool: false, Valid: true},
		LasLogin: sql.NullTime{Time: lastLogin, Valid: true},
	}

	m := row.toModel()

	assert.Equal(t, model.MinisterRoleAdmin, m.Role)
	assert.False(t, m.IsActive)
	require.NotNil(t, m.LastLogin)
	assert.Equal(t, lastLogin, *m.LastLogin)
}

func TestAppointmentRowToModel(t *testing.T) {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	row := &appointmentRow{
		ID:           3,
		PatientID:    "id-1",
		MinisterID:   7,
		MinisterName: sql.NullString{String: "Pedro", Valid: true},
		Date:         date,
		CreatedAt:    sql.NullTime{Time: date, Valid: true},
	}

	a := row.toModel()

	assert.Equal(t, int64(3), a.ID)
	assert.Equal(t, "id-1", a.PatientID)
	assert.Equal(t, "Pedro", a.MinisterName)
	assert.Equal(t, "", a.Notes)
	assert.Equal(t, date, a.Date)
}
