package patient_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RiegL/ostia-visitas-report/internal/model"
	"github.com/RiegL/ostia-visitas-report/internal/repository/mocks"
	patientsvc "github.com/RiegL/ostia-visitas-report/internal/service/patient"
	apperrors "github.com/RiegL/ostia-visitas-report/pkg/errors"
	"github.com/RiegL/ostia-visitas-report/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.NewLogger(&logger.Config{Level: logger.FatalLevel, Output: io.Discard})
}

func TestCreatePatientDefaultsAndPhoneFiltering(t *testing.T) {
	repo := &mocks.PatientRepository{}
	svc := patientsvc.NewService(repo, newTestLogger())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Patient) bool {
		_, err := uuid.Parse(p.ID)
		return err == nil &&
			p.Name == "Maria" &&
			len(p.Phones) == 1 && p.Phones[0] == "1234-5678" &&
			p.Status == model.PatientStatusActive &&
			!p.CreatedAt.IsZero() &&
			p.UpdatedAt.Equal(p.CreatedAt)
	})).Return(func(ctx context.Context, p *model.Patient) *model.Patient { return p }, nil).Once()

	created, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		Name:   "Maria",
		Phones: []string{"1234-5678", "", ""},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1234-5678"}, created.Phones)
	assert.Equal(t, model.PatientStatusActive, created.Status)
	repo.AssertExpectations(t)
}

func TestUpdatePatientSparsePatch(t *testing.T) {
	existing := &model.Patient{
		ID:           "id-1",
		Name:         "Maria",
		Address:      "Rua A",
		District:     "Centro",
		Phones:       []string{"1234-5678"},
		Status:       model.PatientStatusActive,
		Observations: "old note",
		CreatedAt:    time.Now().Add(-time.Hour),
		UpdatedAt:    time.Now().Add(-time.Hour),
	}

	empty := ""
	recovered := model.PatientStatusRecovered

	repo := &mocks.PatientRepository{}
	svc := patientsvc.NewService(repo, newTestLogger())

	repo.On("Get", mock.Anything, "id-1").Return(existing, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Patient) bool {
		// Name untouched, observations explicitly cleared, status changed,
		// updatedAt refreshed past createdAt.
		return p.Name == "Maria" &&
			p.Observations == "" &&
			p.Status == model.PatientStatusRecovered &&
			p.UpdatedAt.After(p.CreatedAt)
	})).Return(func(ctx context.Context, p *model.Patient) *model.Patient { return p }, nil).Once()

	updated, err := svc.UpdatePatient(context.Background(), "id-1", &model.UpdatePatientRequest{
		Observations: &empty,
		Status:       &recovered,
	})

	require.NoError(t, err)
	assert.Equal(t, "Maria", updated.Name)
	assert.Equal(t, "", updated.Observations)
	repo.AssertExpectations(t)
}

func TestUpdatePatientNotFound(t *testing.T) {
	repo := &mocks.PatientRepository{}
	svc := patientsvc.NewService(repo, newTestLogger())

	repo.On("Get", mock.Anything, "missing").Return(nil, apperrors.NotFound("patient", nil)).Once()

	_, err := svc.UpdatePatient(context.Background(), "missing", &model.UpdatePatientRequest{})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeletePatientPropagatesNotFound(t *testing.T) {
	repo := &mocks.PatientRepository{}
	svc := patientsvc.NewService(repo, newTestLogger())

	repo.On("Delete", mock.Anything, "gone").Return(apperrors.NotFound("patient", nil)).Once()

	err := svc.DeletePatient(context.Background(), "gone")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListPatientsByStatus(t *testing.T) {
	repo := &mocks.PatientRepository{}
	svc := patientsvc.NewService(repo, newTestLogger())

	want := []*model.Patient{{ID: "id-1", Status: model.PatientStatusDeceased}}
	repo.On("ListByStatus", mock.Anything, model.PatientStatusDeceased).Return(want, nil).Once()

	got, err := svc.ListPatientsByStatus(context.Background(), model.PatientStatusDeceased)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
