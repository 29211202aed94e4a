package model

import (
	"strings"
	"time"
)

type PatientStatus string

const (
	PatientStatusActive    PatientStatus = "active"
	PatientStatusRecovered PatientStatus = "recovered"
	PatientStatusDeceased  PatientStatus = "deceased"
)

// MaxPatientPhones is the number of phone slots the intake form exposes.
const MaxPatientPhones = 3

type Patient struct {
	ID           string        `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	Address      string        `db:"address" json:"address"`
	District     string        `db:"district" json:"district"`
	Phones       []string      `db:"-" json:"phones"`
	Status       PatientStatus `db:"status" json:"status"`
	Observations string        `db:"observations" json:"observations,omitempty"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

type CreatePatientRequest struct {
	Name         string        `json:"name" binding:"required"`
	Address      string        `json:"address"`
	District     string        `json:"district"`
	Phones       []string      `json:"phones" binding:"required,max=3,nonblankphone"`
	Status       PatientStatus `json:"status" binding:"omitempty,oneof=active recovered deceased"`
	Observations string        `json:"observations"`
}

// UpdatePatientRequest is a sparse patch: nil means "leave unchanged",
// a pointer to the zero value means "clear the field".
type UpdatePatientRequest struct {
	Name         *string        `json:"name"`
	Address      *string        `json:"address"`
	District     *string        `json:"district"`
	Phones       *[]string      `json:"phones"`
	Status       *PatientStatus `json:"status" binding:"omitempty,oneof=active recovered deceased"`
	Observations *string        `json:"observations"`
}

// NormalizePhones drops blank entries while preserving order. The intake
// form submits fixed-size phone slots, so trailing empties are common.
func NormalizePhones(phones []string) []string {
	out := make([]string, 0, len(phones))
	for _, p := range phones {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
