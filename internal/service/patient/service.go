package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RiegL/ostia-visitas-report/internal/model"
	"github.com/RiegL/ostia-visitas-report/internal/repository"
	"github.com/RiegL/ostia-visitas-report/pkg/logger"
)

type PatientService interface {
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	GetPatient(ctx context.Context, id string) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id string, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id string) error
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	ListPatientsByStatus(ctx context.Context, status model.PatientStatus) ([]*model.Patient, error)
}

type Service struct {
	repo   repository.PatientRepository
	logger *logger.Logger
}

func NewService(repo repository.PatientRepository, logger *logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	now := time.Now()

	status := req.Status
	if status == "" {
		status = model.PatientStatusActive
	}

	patient := &model.Patient{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Address:      req.Address,
		District:     req.District,
		Phones:       model.NormalizePhones(req.Phones),
		Status:       status,
		Observations: req.Observations,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, patient)
	if err != nil {
		s.logger.Error(err, "failed to create patient")
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return created, nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

// UpdatePatient applies a sparse patch: nil request fields are left alone,
// fields explicitly set to an empty value are written through.
func (s *Service) UpdatePatient(ctx context.Context, id string, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.District != nil {
		patient.District = *req.District
	}
	if req.Phones != nil {
		patient.Phones = model.NormalizePhones(*req.Phones)
	}
	if req.Status != nil {
		patient.Status = *req.Status
	}
	if req.Observations != nil {
		patient.Observations = *req.Observations
	}
	patient.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, patient)
	if err != nil {
		s.logger.Error(err, "failed to update patient", "patient_id", id)
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error(err, "failed to delete patient", "patient_id", id)
		return err
	}
	return nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(err, "failed to list patients")
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *Service) ListPatientsByStatus(ctx context.Context, status model.PatientStatus) ([]*model.Patient, error) {
	patients, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		s.logger.Error(err, "failed to list patients by status", "status", string(status))
		return nil, fmt.Errorf("failed to list patients by status: %w", err)
	}
	return patients, nil
}
