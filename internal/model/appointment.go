package model

import (
	"time"
)

// Appointment links one patient and one minister to a calendar date.
// The minister name is denormalized for display on visit schedules.
type Appointment struct {
	ID           int64     `db:"id" json:"id"`
	PatientID    string    `db:"patient_id" json:"patient_id"`
	MinisterID   int64     `db:"minister_id" json:"minister_id"`
	MinisterName string    `db:"minister_name" json:"minister_name"`
	Date         time.Time `db:"date" json:"date"`
	Notes        string    `db:"notes" json:"notes,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type ScheduleAppointmentRequest struct {
	PatientID    string `json:"patient_id" binding:"required,uuid"`
	MinisterID   int64  `json:"minister_id" binding:"required"`
	MinisterName string `json:"minister_name" binding:"required"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	Notes        string `json:"notes"`
}
