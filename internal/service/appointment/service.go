package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/RiegL/ostia-visitas-report/internal/email"
	"github.com/RiegL/ostia-visitas-report/internal/model"
	"github.com/RiegL/ostia-visitas-report/internal/repository"
	apperrors "github.com/RiegL/ostia-visitas-report/pkg/errors"
	"github.com/RiegL/ostia-visitas-report/pkg/logger"
)

const dateLayout = "2006-01-02"

type AppointmentService interface {
	ScheduleVisit(ctx context.Context, req *model.ScheduleAppointmentRequest) (*model.Appointment, error)
	CancelVisit(ctx context.Context, id int64) error
	GetAppointment(ctx context.Context, id int64) (*model.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]*model.Appointment, error)
	ListForPatient(ctx context.Context, patientID string) ([]*model.Appointment, error)
	FindByPatientAndMinister(ctx context.Context, patientID string, ministerID int64) ([]*model.Appointment, error)
}

type Service struct {
	repo         repository.AppointmentRepository
	patientRepo  repository.PatientRepository
	ministerRepo repository.MinisterRepository
	emailSvc     email.Service
	logger       *logger.Logger
}

func NewService(
	repo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	ministerRepo repository.MinisterRepository,
	emailSvc email.Service,
	logger *logger.Logger,
) *Service {
	return &Service{
		repo:         repo,
		patientRepo:  patientRepo,
		ministerRepo: ministerRepo,
		emailSvc:     emailSvc,
		logger:       logger,
	}
}

// ScheduleVisit creates a visit appointment. A same-patient-same-date
// pre-check runs here, and the unique index on (patient_id, date) backstops
// the race between check and insert.
func (s *Service) ScheduleVisit(ctx context.Context, req *model.ScheduleAppointmentRequest) (*model.Appointment, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperrors.BadRequest("invalid date", err)
	}

	patient, err := s.patientRepo.Get(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListForPatientOnDate(ctx, req.PatientID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing visits: %w", err)
	}
	if len(existing) > 0 {
		return nil, apperrors.Conflict("patient already has a visit scheduled for this date", nil)
	}

	appointment := &model.Appointment{
		PatientID:    req.PatientID,
		MinisterID:   req.MinisterID,
		MinisterName: req.MinisterName,
		Date:         date,
		Notes:        req.Notes,
		CreatedAt:    time.Now(),
	}

	created, err := s.repo.Create(ctx, appointment)
	if err != nil {
		s.logger.Error(err, "failed to schedule visit", "patient_id", req.PatientID)
		return nil, err
	}

	s.notifyMinister(ctx, created, patient.Name)
	return created, nil
}

// CancelVisit removes an appointment. Cancelling twice reports not found.
func (s *Service) CancelVisit(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error(err, "failed to cancel visit", "appointment_id", id)
		return err
	}
	return nil
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListByDate(ctx context.Context, date string) ([]*model.Appointment, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, apperrors.BadRequest("invalid date", err)
	}

	appointments, err := s.repo.ListByDate(ctx, parsed)
	if err != nil {
		s.logger.Error(err, "failed to list visits by date", "date", date)
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return appointments, nil
}

func (s *Service) ListForPatient(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	appointments, err := s.repo.ListForPatient(ctx, patientID)
	if err != nil {
		s.logger.Error(err, "failed to list visits for patient", "patient_id", patientID)
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return appointments, nil
}

func (s *Service) FindByPatientAndMinister(ctx context.Context, patientID string, ministerID int64) ([]*model.Appointment, error) {
	appointments, err := s.repo.FindByPatientAndMinister(ctx, patientID, ministerID)
	if err != nil {
		s.logger.Error(err, "failed to find visits", "patient_id", patientID, "minister_id", ministerID)
		return nil, fmt.Errorf("failed to find visits: %w", err)
	}
	return appointments, nil
}

// notifyMinister emails the assigned minister about the new visit. Failures
// are logged and swallowed, scheduling already succeeded.
func (s *Service) notifyMinister(ctx context.Context, appointment *model.Appointment, patientName string) {
	minister, err := s.ministerRepo.Get(ctx, appointment.MinisterID)
	if err != nil {
		s.logger.Warn("could not load minister for notification", "minister_id", appointment.MinisterID, "error", err.Error())
		return
	}
	if minister.Email == "" {
		return
	}
	if err := s.emailSvc.SendVisitScheduled(minister.Email, appointment, patientName); err != nil {
		s.logger.Warn("failed to send visit notification", "minister_id", minister.ID, "error", err.Error())
	}
}
