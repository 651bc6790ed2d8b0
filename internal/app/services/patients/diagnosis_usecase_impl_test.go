package patients

import (
	"context"
	"testing"
	"time"

	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/dto/requests"
	"bimar-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) ReplacePatient(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) AppendEncounter(ctx context.Context, patientID string, encounter *models.DiagnosisEncounter) (int64, error) {
	args := m.Called(ctx, patientID, encounter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) ReplacePrescription(ctx context.Context, prescriptionID string, prescription *models.Prescription) (int64, error) {
	args := m.Called(ctx, prescriptionID, prescription)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) UnsetPrescription(ctx context.Context, prescriptionID string) (int64, error) {
	args := m.Called(ctx, prescriptionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) ReplaceConsultation(ctx context.Context, consultationID string, consultation *models.Consultation) (int64, error) {
	args := m.Called(ctx, consultationID, consultation)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) RemoveConsultation(ctx context.Context, consultationID string) (int64, error) {
	args := m.Called(ctx, consultationID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) UpdateMedicalRecord(ctx context.Context, email string, record *models.MedicalRecord) (int64, error) {
	args := m.Called(ctx, email, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) UnsetMedicalRecord(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func newTestDiagnosisUsecase(repo *MockPatientRepository) *diagnosisUsecase {
	return &diagnosisUsecase{
		PatientRepository: repo,
		Log:               zap.NewNop(),
	}
}

func patientSession() *models.Session {
	return &models.Session{
		SessionID: "sess-1",
		SubjectID: "pat-1",
		Email:     "mona@example.com",
		Role:      constvars.BimarRolePatient,
	}
}

func TestCreateEncounter(t *testing.T) {
	ctx := context.Background()
	request := &requests.CreateEncounter{
		DoctorName:    "Dr. Omar",
		DoctorPhone:   "+201001234567",
		Diagnosis:     []string{"acute bronchitis"},
		TreatmentPlan: "rest and fluids",
	}

	t.Run("Standard Encounter Has No Consultations Field", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		repo.On("AppendEncounter", ctx, "pat-1", mock.MatchedBy(func(encounter *models.DiagnosisEncounter) bool {
			return encounter.Consultations == nil && encounter.EncounterID != ""
		})).Return(int64(1), nil)

		response, err := usecase.CreateEncounter(ctx, patientSession(), request, false)

		assert.NoError(t, err)
		assert.False(t, response.FollowUp)
		repo.AssertExpectations(t)
	})

	t.Run("Follow Up Without Consultation Data Stores Empty Slice", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		repo.On("AppendEncounter", ctx, "pat-1", mock.MatchedBy(func(encounter *models.DiagnosisEncounter) bool {
			return encounter.Consultations != nil && len(encounter.Consultations) == 0
		})).Return(int64(1), nil)

		response, err := usecase.CreateEncounter(ctx, patientSession(), request, true)

		assert.NoError(t, err)
		assert.True(t, response.FollowUp, "a follow-up with no consultation data must still materialize the field")
		repo.AssertExpectations(t)
	})

	t.Run("Follow Up Consultations Get Server IDs And Default Status", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		withConsultations := *request
		withConsultations.Consultations = []requests.ConsultationData{
			{ConsultationDate: time.Now().AddDate(0, 0, 7), Description: "check-up", Status: "Scheduled"},
			{ConsultationDate: time.Now().AddDate(0, 0, 14), Description: "labs review", Status: "bogus"},
		}

		repo.On("AppendEncounter", ctx, "pat-1", mock.MatchedBy(func(encounter *models.DiagnosisEncounter) bool {
			if len(encounter.Consultations) != 2 {
				return false
			}
			first, second := encounter.Consultations[0], encounter.Consultations[1]
			return first.ConsultationID != "" &&
				first.Status == models.ConsultationStatusScheduled &&
				second.Status == models.ConsultationStatusPending
		})).Return(int64(1), nil)

		response, err := usecase.CreateEncounter(ctx, patientSession(), &withConsultations, true)

		assert.NoError(t, err)
		assert.True(t, response.FollowUp)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown Patient", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		repo.On("AppendEncounter", ctx, "pat-1", mock.Anything).Return(int64(0), nil)

		_, err := usecase.CreateEncounter(ctx, patientSession(), request, false)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestCreatePrescriptionEncounter(t *testing.T) {
	ctx := context.Background()
	request := &requests.CreatePrescriptionEncounter{
		Notes: "after meals",
		Instructions: []requests.PrescriptionInstructionData{
			{Medication: "amoxicillin", Dosage: "500mg", Frequency: 3, Duration: 7},
		},
	}

	t.Run("Appends Prescription Only Encounter", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		repo.On("AppendEncounter", ctx, "pat-1", mock.MatchedBy(func(encounter *models.DiagnosisEncounter) bool {
			return encounter.EncounterID != "" &&
				encounter.Prescription != nil &&
				encounter.Prescription.Status == models.PrescriptionStatusPending &&
				len(encounter.Prescription.Instructions) == 1 &&
				encounter.DoctorName == "" &&
				encounter.Consultations == nil
		})).Return(int64(1), nil)

		response, err := usecase.CreatePrescriptionEncounter(ctx, "pat-1", request)

		assert.NoError(t, err)
		assert.NotEmpty(t, response.EncounterID)
		assert.NotEmpty(t, response.PrescriptionID)
		repo.AssertExpectations(t)
	})

	t.Run("Follow Up Date Materializes Consultations", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		followUpDate := time.Now().AddDate(0, 0, 14)
		withFollowUp := *request
		withFollowUp.FollowUpDate = &followUpDate

		repo.On("AppendEncounter", ctx, "pat-1", mock.MatchedBy(func(encounter *models.DiagnosisEncounter) bool {
			return encounter.IsFollowUp() && len(encounter.Consultations) == 0
		})).Return(int64(1), nil)

		_, err := usecase.CreatePrescriptionEncounter(ctx, "pat-1", &withFollowUp)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown Patient", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		repo.On("AppendEncounter", ctx, "pat-1", mock.Anything).Return(int64(0), nil)

		_, err := usecase.CreatePrescriptionEncounter(ctx, "pat-1", request)

		assert.Error(t, err)
	})
}

func TestUpdatePrescription(t *testing.T) {
	ctx := context.Background()

	t.Run("Wholesale Replace Keeps Identity Only", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		date := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
		repo.On("ReplacePrescription", ctx, "presc-1", mock.MatchedBy(func(prescription *models.Prescription) bool {
			return prescription.PrescriptionID == "presc-1" &&
				prescription.FollowUpDate == nil &&
				prescription.Status == models.PrescriptionStatusIssued
		})).Return(int64(1), nil)

		err := usecase.UpdatePrescription(ctx, "presc-1", &requests.UpdatePrescription{
			PrescriptionDate: date,
			Notes:            "updated",
			Status:           "Issued",
		})

		assert.NoError(t, err, "fields absent from the request should be absent in the replacement")
		repo.AssertExpectations(t)
	})

	t.Run("Unknown Prescription", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		repo.On("ReplacePrescription", ctx, "missing", mock.Anything).Return(int64(0), nil)

		err := usecase.UpdatePrescription(ctx, "missing", &requests.UpdatePrescription{
			PrescriptionDate: time.Now(),
			Status:           "Issued",
		})

		assert.Error(t, err)
	})
}

func TestDeletePrescription(t *testing.T) {
	ctx := context.Background()

	t.Run("Second Delete Reports Not Found", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		repo.On("UnsetPrescription", ctx, "presc-1").Return(int64(1), nil).Once()
		repo.On("UnsetPrescription", ctx, "presc-1").Return(int64(0), nil).Once()

		assert.NoError(t, usecase.DeletePrescription(ctx, "presc-1"))

		err := usecase.DeletePrescription(ctx, "presc-1")
		assert.Error(t, err, "deleting an already removed prescription should not be a silent no-op")
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestDeleteConsultation(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes Matched Consultation", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		repo.On("RemoveConsultation", ctx, "cons-1").Return(int64(1), nil)

		assert.NoError(t, usecase.DeleteConsultation(ctx, "cons-1"))
	})

	t.Run("Unknown Consultation", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		repo.On("RemoveConsultation", ctx, "missing").Return(int64(0), nil)

		err := usecase.DeleteConsultation(ctx, "missing")

		assert.Error(t, err)
	})
}

func TestGetEncounters(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Full History", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		patient := &models.Patient{
			ID:    "pat-1",
			Email: "mona@example.com",
			Diagnosis: []models.DiagnosisEncounter{
				{EncounterID: "enc-1"},
				{EncounterID: "enc-2", Consultations: []models.Consultation{}},
			},
		}
		repo.On("FindByEmail", ctx, "mona@example.com").Return(patient, nil)

		encounters, err := usecase.GetEncounters(ctx, patientSession())

		assert.NoError(t, err)
		assert.Len(t, encounters, 2)
		assert.False(t, encounters[0].IsFollowUp())
		assert.True(t, encounters[1].IsFollowUp())
	})

	t.Run("Unknown Patient", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestDiagnosisUsecase(repo)

		repo.On("FindByEmail", ctx, "mona@example.com").Return(nil, nil)

		_, err := usecase.GetEncounters(ctx, patientSession())

		assert.Error(t, err)
	})
}
