package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/RiegL/ostia-visitas-report/internal/model"
)

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) Create(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	args := m.Called(ctx, patient)
	if rf, ok := args.Get(0).(func(context.Context, *model.Patient) *model.Patient); ok {
		return rf(ctx, patient), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *PatientRepository) Get(ctx context.Context, id string) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *PatientRepository) Update(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	args := m.Called(ctx, patient)
	if rf, ok := args.Get(0).(func(context.Context, *model.Patient) *model.Patient); ok {
		return rf(ctx, patient), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *PatientRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *PatientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Patient), args.Error(1)
}

func (m *PatientRepository) ListByStatus(ctx context.Context, status model.PatientStatus) ([]*model.Patient, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Patient), args.Error(1)
}

type MinisterRepository struct {
	mock.Mock
}

func (m *MinisterRepository) Create(ctx context.Context, minister *model.Minister) (*model.Minister, error) {
	args := m.Called(ctx, minister)
	if rf, ok := args.Get(0).(func(context.Context, *model.Minister) *model.Minister); ok {
		return rf(ctx, minister), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Minister), args.Error(1)
}

func (m *MinisterRepository) Get(ctx context.Context, id int64) (*model.Minister, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Minister), args.Error(1)
}

func (m *MinisterRepository) GetByUsername(ctx context.Context, username string) (*model.Minister, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Minister), args.Error(1)
}

func (m *MinisterRepository) Update(ctx context.Context, minister *model.Minister) (*model.Minister, error) {
	args := m.Called(ctx, minister)
	if rf, ok := args.Get(0).(func(context.Context, *model.Minister) *model.Minister); ok {
		return rf(ctx, minister), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Minister), args.Error(1)
}

func (m *MinisterRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MinisterRepository) List(ctx context.Context) ([]*model.Minister, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Minister), args.Error(1)
}

func (m *MinisterRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error) {
	args := m.Called(ctx, appointment)
	if rf, ok := args.Get(0).(func(context.Context, *model.Appointment) *model.Appointment); ok {
		return rf(ctx, appointment), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *AppointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *AppointmentRepository) ListByDate(ctx context.Context, date time.Time) ([]*model.Appointment, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Appointment), args.Error(1)
}

func (m *AppointmentRepository) ListForPatient(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Appointment), args.Error(1)
}

func (m *AppointmentRepository) ListForPatientOnDate(ctx context.Context, patientID string, date time.Time) ([]*model.Appointment, error) {
	args := m.Called(ctx, patientID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Appointment), args.Error(1)
}

func (m *AppointmentRepository) FindByPatientAndMinister(ctx context.Context, patientID string, ministerID int64) ([]*model.Appointment, error) {
	args := m.Called(ctx, patientID, ministerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Appointment), args.Error(1)
}
