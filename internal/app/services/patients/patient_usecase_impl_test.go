package patients

import (
	"context"
	"testing"
	"time"

	"bimar-service/internal/app/config"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/dto/requests"
	"bimar-service/internal/pkg/exceptions"
	"bimar-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) (string, error) {
	args := m.Called(ctx, session, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestPatientUsecase(repo *MockPatientRepository, sessionService *MockSessionService) *patientUsecase {
	return &patientUsecase{
		PatientRepository: repo,
		SessionService:    sessionService,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 24},
		},
		Log: zap.NewNop(),
	}
}

func TestPatientRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Patient With Server Generated ID", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestPatientUsecase(repo, new(MockSessionService))

		repo.On("FindByEmail", ctx, "mona@example.com").Return(nil, nil)
		repo.On("CreatePatient", ctx, mock.MatchedBy(func(patient *models.Patient) bool {
			return patient.ID != "" && patient.Password != "PatPass1!"
		})).Return("pat-1", nil)

		response, err := usecase.Register(ctx, &requests.RegisterPatient{
			Name:           "Mona",
			Phone:          "+201009876543",
			Email:          "mona@example.com",
			Password:       "PatPass1!",
			RetypePassword: "PatPass1!",
		})

		assert.NoError(t, err)
		assert.Equal(t, "pat-1", response.PatientID)
	})

	t.Run("Password Mismatch", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestPatientUsecase(repo, new(MockSessionService))

		_, err := usecase.Register(ctx, &requests.RegisterPatient{
			Email:          "mona@example.com",
			Password:       "PatPass1!",
			RetypePassword: "different",
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "CreatePatient")
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestPatientUsecase(repo, new(MockSessionService))

		repo.On("FindByEmail", ctx, "mona@example.com").Return(&models.Patient{Email: "mona@example.com"}, nil)

		_, err := usecase.Register(ctx, &requests.RegisterPatient{
			Email:          "mona@example.com",
			Password:       "PatPass1!",
			RetypePassword: "PatPass1!",
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "CreatePatient")
	})
}

func TestPatientLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Credentials", func(t *testing.T) {
		repo := new(MockPatientRepository)
		sessionService := new(MockSessionService)
		usecase := newTestPatientUsecase(repo, sessionService)

		hashed, err := utils.HashPassword("PatPass1!")
		assert.NoError(t, err)

		patient := &models.Patient{ID: "pat-1", Email: "mona@example.com", Password: hashed}
		repo.On("FindByEmail", ctx, "mona@example.com").Return(patient, nil)
		sessionService.On("CreateSession", ctx, mock.MatchedBy(func(session *models.Session) bool {
			return session.Role == constvars.BimarRolePatient && session.SubjectID == "pat-1"
		}), 24*time.Hour).Return("signed-token", nil)

		response, err := usecase.Login(ctx, &requests.LoginPatient{
			Email:    "mona@example.com",
			Password: "PatPass1!",
		})

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", response.Token)
		assert.Equal(t, constvars.BimarRolePatient, response.Role)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		repo := new(MockPatientRepository)
		sessionService := new(MockSessionService)
		usecase := newTestPatientUsecase(repo, sessionService)

		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

		_, err := usecase.Login(ctx, &requests.LoginPatient{
			Email:    "ghost@example.com",
			Password: "whatever",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode,
			"an absent account is not found, not a credential failure")
		sessionService.AssertNotCalled(t, "CreateSession")
	})
}

func TestMedicalRecord(t *testing.T) {
	ctx := context.Background()
	session := &models.Session{SubjectID: "pat-1", Email: "mona@example.com", Role: constvars.BimarRolePatient}

	t.Run("Update Merges Into Existing Record", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestPatientUsecase(repo, new(MockSessionService))

		patient := &models.Patient{
			ID:    "pat-1",
			Email: "mona@example.com",
			MedicalRecord: &models.MedicalRecord{
				Allergies: []string{"penicillin"},
				BloodType: "A+",
			},
		}
		repo.On("FindByEmail", ctx, "mona@example.com").Return(patient, nil)
		repo.On("UpdateMedicalRecord", ctx, "mona@example.com", mock.MatchedBy(func(record *models.MedicalRecord) bool {
			return record.BloodType == "A+" && len(record.Surgeries) == 1
		})).Return(int64(1), nil)

		record, err := usecase.UpdateMedicalRecord(ctx, session, &requests.UpdateMedicalRecord{
			Surgeries: []string{"appendectomy 2019"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "A+", record.BloodType, "fields absent from the request keep their stored values")
		assert.Equal(t, []string{"penicillin"}, record.Allergies)
		repo.AssertExpectations(t)
	})

	t.Run("Delete Unsets Record", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestPatientUsecase(repo, new(MockSessionService))

		repo.On("UnsetMedicalRecord", ctx, "mona@example.com").Return(int64(1), nil)

		assert.NoError(t, usecase.DeleteMedicalRecord(ctx, session))
	})

	t.Run("Delete For Unknown Patient", func(t *testing.T) {
		repo := new(MockPatientRepository)
		usecase := newTestPatientUsecase(repo, new(MockSessionService))

		repo.On("UnsetMedicalRecord", ctx, "mona@example.com").Return(int64(0), nil)

		assert.Error(t, usecase.DeleteMedicalRecord(ctx, session))
	})
}
