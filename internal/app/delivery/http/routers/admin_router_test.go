package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bimar-service/internal/app/config"
	"bimar-service/internal/app/delivery/http/controllers"
	"bimar-service/internal/app/delivery/http/middlewares"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/dto/requests"
	"bimar-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCredentialingUsecase struct {
	mock.Mock
}

func (m *MockCredentialingUsecase) RegisterAdmin(ctx context.Context, request *requests.RegisterAdmin) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockCredentialingUsecase) Activate(ctx context.Context, doctorID string) error {
	args := m.Called(ctx, doctorID)
	return args.Error(0)
}

func (m *MockCredentialingUsecase) Reject(ctx context.Context, request *requests.RejectDoctor) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockCredentialingUsecase) Ban(ctx context.Context, doctorID string) error {
	args := m.Called(ctx, doctorID)
	return args.Error(0)
}

func (m *MockCredentialingUsecase) Suspend(ctx context.Context, request *requests.SuspendDoctor) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockCredentialingUsecase) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockCredentialingUsecase) ListPatients(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

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

func TestAdminRouter_RoleEnforcement(t *testing.T) {
	secret := "test-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: secret, ExpTimeInHour: 1},
	}

	tokenFor := func(t *testing.T, sessionID string) string {
		t.Helper()
		token, err := utils.GenerateSessionJWT(sessionID, secret, 1)
		assert.NoError(t, err)
		return token
	}

	newRouter := func(sessionService *MockSessionService, usecase *MockCredentialingUsecase) chi.Router {
		logger := zap.NewNop()
		mw := &middlewares.Middlewares{
			Log:            logger,
			SessionService: sessionService,
			InternalConfig: internalConfig,
		}
		ctrl := controllers.NewAdminController(logger, usecase)
		router := chi.NewRouter()
		attachAdminRoutes(router, mw, ctrl)
		return router
	}

	t.Run("Admin Session Can Activate", func(t *testing.T) {
		sessionService := new(MockSessionService)
		usecase := new(MockCredentialingUsecase)

		adminSession := &models.Session{SessionID: "sess-admin", SubjectID: "admin-1", Role: constvars.BimarRoleAdmin}
		sessionService.On("GetSession", mock.Anything, "sess-admin").Return(adminSession, nil)
		usecase.On("Activate", mock.Anything, "doc-1").Return(nil)

		req := httptest.NewRequest("PATCH", "/doctors/doc-1/activate", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+tokenFor(t, "sess-admin"))

		rr := httptest.NewRecorder()
		newRouter(sessionService, usecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("Doctor Session Is Refused", func(t *testing.T) {
		sessionService := new(MockSessionService)
		usecase := new(MockCredentialingUsecase)

		doctorSession := &models.Session{SessionID: "sess-doc", SubjectID: "doc-1", Role: constvars.BimarRoleDoctor}
		sessionService.On("GetSession", mock.Anything, "sess-doc").Return(doctorSession, nil)

		req := httptest.NewRequest("PATCH", "/doctors/doc-1/activate", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+tokenFor(t, "sess-doc"))

		rr := httptest.NewRecorder()
		newRouter(sessionService, usecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "credentialing operations are admin only")
		usecase.AssertNotCalled(t, "Activate")
	})

	t.Run("Unauthenticated Request Is Refused", func(t *testing.T) {
		sessionService := new(MockSessionService)
		usecase := new(MockCredentialingUsecase)

		req := httptest.NewRequest("GET", "/doctors", nil)

		rr := httptest.NewRecorder()
		newRouter(sessionService, usecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		usecase.AssertNotCalled(t, "ListDoctors")
	})

	t.Run("Suspend Takes Doctor ID From Path", func(t *testing.T) {
		sessionService := new(MockSessionService)
		usecase := new(MockCredentialingUsecase)

		adminSession := &models.Session{SessionID: "sess-admin", SubjectID: "admin-1", Role: constvars.BimarRoleAdmin}
		sessionService.On("GetSession", mock.Anything, "sess-admin").Return(adminSession, nil)
		usecase.On("Suspend", mock.Anything, mock.MatchedBy(func(request *requests.SuspendDoctor) bool {
			return request.DoctorID == "doc-7" && request.SuspensionDuration == 14
		})).Return(nil)

		body, err := json.Marshal(map[string]interface{}{
			"suspensionReason":   "repeated no-shows",
			"suspensionDuration": 14,
			// A doctor id in the body must be ignored in favor of the path.
			"doctorId": "doc-other",
		})
		assert.NoError(t, err)

		req := httptest.NewRequest("PATCH", "/doctors/doc-7/suspend", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+tokenFor(t, "sess-admin"))

		rr := httptest.NewRecorder()
		newRouter(sessionService, usecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		usecase.AssertExpectations(t)
	})
}
