package admins

import (
	"context"
	"errors"
	"testing"

	"bimar-service/internal/app/contracts"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/dto/requests"
	"bimar-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) CreateAdmin(ctx context.Context, admin *models.Admin) (string, error) {
	args := m.Called(ctx, admin)
	return args.String(0), args.Error(1)
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAllByStatus(ctx context.Context, status models.DoctorStatus) ([]models.Doctor, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAllByStatusAndField(ctx context.Context, status models.DoctorStatus, field string) ([]models.Doctor, error) {
	args := m.Called(ctx, status, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) UpdateFields(ctx context.Context, email string, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, email, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) UpdatePassword(ctx context.Context, email string, hashedPassword string) (int64, error) {
	args := m.Called(ctx, email, hashedPassword)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) UpdateStatus(ctx context.Context, doctorID string, status models.DoctorStatus) (int64, error) {
	args := m.Called(ctx, doctorID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) UpdateStatusWithRejection(ctx context.Context, doctorID string, status models.DoctorStatus, rejectionReason string) (int64, error) {
	args := m.Called(ctx, doctorID, status, rejectionReason)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) UpdateStatusWithSuspension(ctx context.Context, doctorID string, status models.DoctorStatus, details *models.SuspensionDetails) (int64, error) {
	args := m.Called(ctx, doctorID, status, details)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) ResubmitApplication(ctx context.Context, doctorID string, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, doctorID, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) AddClinic(ctx context.Context, doctorEmail string, clinic *models.Clinic) (int64, error) {
	args := m.Called(ctx, doctorEmail, clinic)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) UpdateClinic(ctx context.Context, doctorEmail, clinicID string, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, doctorEmail, clinicID, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) RemoveClinic(ctx context.Context, doctorEmail, clinicID string) (int64, error) {
	args := m.Called(ctx, doctorEmail, clinicID)
	return args.Get(0).(int64), args.Error(1)
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) PublishIntent(ctx context.Context, intent *models.NotificationIntent) error {
	args := m.Called(ctx, intent)
	return args.Error(0)
}

func newTestCredentialingUsecase(
	adminRepo contracts.AdminRepository,
	doctorRepo contracts.DoctorRepository,
	mailer contracts.MailerService,
) *credentialingUsecase {
	return &credentialingUsecase{
		AdminRepository:  adminRepo,
		DoctorRepository: doctorRepo,
		MailerService:    mailer,
		Log:              zap.NewNop(),
	}
}

func TestCredentialingActivate(t *testing.T) {
	ctx := context.Background()
	pendingDoctor := &models.Doctor{
		ID:     "doc-1",
		Name:   "Dr. Omar",
		Email:  "omar@example.com",
		Status: models.DoctorStatusPending,
	}

	t.Run("Activates Pending Doctor And Publishes Notification", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		mailer := new(MockMailerService)
		usecase := newTestCredentialingUsecase(nil, doctorRepo, mailer)

		doctorRepo.On("FindByID", ctx, "doc-1").Return(pendingDoctor, nil)
		doctorRepo.On("UpdateStatus", ctx, "doc-1", models.DoctorStatusActive).Return(int64(1), nil)
		mailer.On("PublishIntent", ctx, mock.MatchedBy(func(intent *models.NotificationIntent) bool {
			return intent.Kind == constvars.NotificationKindDoctorActivated &&
				intent.RecipientEmail == "omar@example.com"
		})).Return(nil)

		err := usecase.Activate(ctx, "doc-1")

		assert.NoError(t, err)
		doctorRepo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("Notification Failure Does Not Fail Activation", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		mailer := new(MockMailerService)
		usecase := newTestCredentialingUsecase(nil, doctorRepo, mailer)

		doctorRepo.On("FindByID", ctx, "doc-1").Return(pendingDoctor, nil)
		doctorRepo.On("UpdateStatus", ctx, "doc-1", models.DoctorStatusActive).Return(int64(1), nil)
		mailer.On("PublishIntent", ctx, mock.Anything).Return(errors.New("broker unavailable"))

		err := usecase.Activate(ctx, "doc-1")

		assert.NoError(t, err, "notification delivery is best effort and should not undo the state change")
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		usecase := newTestCredentialingUsecase(nil, doctorRepo, new(MockMailerService))

		doctorRepo.On("FindByID", ctx, "missing").Return(nil, nil)

		err := usecase.Activate(ctx, "missing")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		doctorRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Activates Rejected Doctor As Override", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		mailer := new(MockMailerService)
		usecase := newTestCredentialingUsecase(nil, doctorRepo, mailer)

		rejectedDoctor := &models.Doctor{ID: "doc-2", Email: "nada@example.com", Status: models.DoctorStatusRejected}
		doctorRepo.On("FindByID", ctx, "doc-2").Return(rejectedDoctor, nil)
		doctorRepo.On("UpdateStatus", ctx, "doc-2", models.DoctorStatusActive).Return(int64(1), nil)
		mailer.On("PublishIntent", ctx, mock.Anything).Return(nil)

		err := usecase.Activate(ctx, "doc-2")

		assert.NoError(t, err, "activation doubles as the administrative override")
	})
}

func TestCredentialingReject(t *testing.T) {
	ctx := context.Background()
	doctor := &models.Doctor{ID: "doc-1", Email: "omar@example.com", Status: models.DoctorStatusPending}

	t.Run("Records Rejection Reason", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		mailer := new(MockMailerService)
		usecase := newTestCredentialingUsecase(nil, doctorRepo, mailer)

		doctorRepo.On("FindByID", ctx, "doc-1").Return(doctor, nil)
		doctorRepo.On("UpdateStatusWithRejection", ctx, "doc-1", models.DoctorStatusRejected, "incomplete syndicate card").Return(int64(1), nil)
		mailer.On("PublishIntent", ctx, mock.MatchedBy(func(intent *models.NotificationIntent) bool {
			return intent.Kind == constvars.NotificationKindDoctorRejected &&
				intent.TemplateData["reason"] == "incomplete syndicate card"
		})).Return(nil)

		err := usecase.Reject(ctx, &requests.RejectDoctor{
			DoctorID:        "doc-1",
			RejectionReason: "incomplete syndicate card",
		})

		assert.NoError(t, err)
		doctorRepo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})
}

func TestCredentialingSuspend(t *testing.T) {
	ctx := context.Background()
	doctor := &models.Doctor{ID: "doc-1", Email: "omar@example.com", Status: models.DoctorStatusActive}

	t.Run("Suspends With Computed Window", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		mailer := new(MockMailerService)
		usecase := newTestCredentialingUsecase(nil, doctorRepo, mailer)

		doctorRepo.On("FindByID", ctx, "doc-1").Return(doctor, nil)
		doctorRepo.On("UpdateStatusWithSuspension", ctx, "doc-1", models.DoctorStatusSuspended,
			mock.MatchedBy(func(details *models.SuspensionDetails) bool {
				return details.Reason == "repeated no-shows" &&
					details.DurationDays == 14 &&
					details.EndDate.Sub(details.StartDate).Hours() == 14*24
			})).Return(int64(1), nil)
		mailer.On("PublishIntent", ctx, mock.Anything).Return(nil)

		err := usecase.Suspend(ctx, &requests.SuspendDoctor{
			DoctorID:           "doc-1",
			SuspensionReason:   "repeated no-shows",
			SuspensionDuration: 14,
		})

		assert.NoError(t, err)
		doctorRepo.AssertExpectations(t)
	})

	t.Run("Rejects Empty Reason", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		usecase := newTestCredentialingUsecase(nil, doctorRepo, new(MockMailerService))

		err := usecase.Suspend(ctx, &requests.SuspendDoctor{
			DoctorID:           "doc-1",
			SuspensionDuration: 14,
		})

		assert.Error(t, err)
		doctorRepo.AssertNotCalled(t, "UpdateStatusWithSuspension")
	})

	t.Run("Rejects Non Positive Duration", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		usecase := newTestCredentialingUsecase(nil, doctorRepo, new(MockMailerService))

		err := usecase.Suspend(ctx, &requests.SuspendDoctor{
			DoctorID:           "doc-1",
			SuspensionReason:   "repeated no-shows",
			SuspensionDuration: 0,
		})

		assert.Error(t, err)
		doctorRepo.AssertNotCalled(t, "UpdateStatusWithSuspension")
	})
}

func TestCredentialingBan(t *testing.T) {
	ctx := context.Background()

	t.Run("Bans Active Doctor", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		mailer := new(MockMailerService)
		usecase := newTestCredentialingUsecase(nil, doctorRepo, mailer)

		doctor := &models.Doctor{ID: "doc-1", Email: "omar@example.com", Status: models.DoctorStatusActive}
		doctorRepo.On("FindByID", ctx, "doc-1").Return(doctor, nil)
		doctorRepo.On("UpdateStatus", ctx, "doc-1", models.DoctorStatusBanned).Return(int64(1), nil)
		mailer.On("PublishIntent", ctx, mock.MatchedBy(func(intent *models.NotificationIntent) bool {
			return intent.Kind == constvars.NotificationKindDoctorBanned
		})).Return(nil)

		err := usecase.Ban(ctx, "doc-1")

		assert.NoError(t, err)
		doctorRepo.AssertExpectations(t)
	})
}

func TestRegisterAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Admin With Hashed Password", func(t *testing.T) {
		adminRepo := new(MockAdminRepository)
		usecase := newTestCredentialingUsecase(adminRepo, nil, nil)

		adminRepo.On("FindByEmail", ctx, "root@example.com").Return(nil, nil)
		adminRepo.On("CreateAdmin", ctx, mock.MatchedBy(func(admin *models.Admin) bool {
			return admin.Email == "root@example.com" &&
				admin.ID != "" &&
				admin.Password != "Secret123!"
		})).Return("admin-1", nil)

		err := usecase.RegisterAdmin(ctx, &requests.RegisterAdmin{
			Name:     "Root",
			Email:    "root@example.com",
			Password: "Secret123!",
		})

		assert.NoError(t, err)
		adminRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		adminRepo := new(MockAdminRepository)
		usecase := newTestCredentialingUsecase(adminRepo, nil, nil)

		adminRepo.On("FindByEmail", ctx, "root@example.com").Return(&models.Admin{Email: "root@example.com"}, nil)

		err := usecase.RegisterAdmin(ctx, &requests.RegisterAdmin{
			Name:     "Root",
			Email:    "root@example.com",
			Password: "Secret123!",
		})

		assert.Error(t, err)
		adminRepo.AssertNotCalled(t, "CreateAdmin")
	})
}
