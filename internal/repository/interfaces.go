package repository

import (
	"context"
	"time"

	"github.com/RiegL/ostia-visitas-report/internal/model"
)

// All repository interfaces in one file
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) (*model.Patient, error)
		Get(ctx context.Context, id string) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) (*model.Patient, error)
		Delete(ctx context.Context, id string) error
		List(ctx context.Context) ([]*model.Patient, error)
		ListByStatus(ctx context.Context, status model.PatientStatus) ([]*model.Patient, error)
	}

	MinisterRepository interface {
		Create(ctx context.Context, minister *model.Minister) (*model.Minister, error)
		Get(ctx context.Context, id int64) (*model.Minister, error)
		// GetByUsername returns (nil, nil) when no minister matches, so
		// callers can tell a credential miss from a transport failure.
		GetByUsername(ctx context.Context, username string) (*model.Minister, error)
		Update(ctx context.Context, minister *model.Minister) (*model.Minister, error)
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Minister, error)
		UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
		Get(ctx context.Context, id int64) (*model.Appointment, error)
		Delete(ctx context.Context, id int64) error
		ListByDate(ctx context.Context, date time.Time) ([]*model.Appointment, error)
		ListForPatient(ctx context.Context, patientID string) ([]*model.Appointment, error)
		ListForPatientOnDate(ctx context.Context, patientID string, date time.Time) ([]*model.Appointment, error)
		FindByPatientAndMinister(ctx context.Context, patientID string, ministerID int64) ([]*model.Appointment, error)
	}
)
