package routers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"bimar-service/internal/app/config"
	"bimar-service/internal/app/delivery/http/controllers"
	"bimar-service/internal/app/delivery/http/middlewares"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/dto/requests"
	"bimar-service/internal/pkg/dto/responses"
	"bimar-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) Register(ctx context.Context, request *requests.RegisterDoctor) (*responses.RegisterDoctor, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RegisterDoctor), args.Error(1)
}

func (m *MockDoctorUsecase) Login(ctx context.Context, request *requests.LoginDoctor) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockDoctorUsecase) Logout(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockDoctorUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockDoctorUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockDoctorUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockDoctorUsecase) GetProfile(ctx context.Context, session *models.Session) (*models.Doctor, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctor) error {
	args := m.Called(ctx, session, request)
	return args.Error(0)
}

func (m *MockDoctorUsecase) Delete(ctx context.Context, request *requests.DeleteDoctor) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockDoctorUsecase) ListActive(ctx context.Context, field string) ([]models.Doctor, error) {
	args := m.Called(ctx, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorUsecase) AddClinic(ctx context.Context, session *models.Session, request *requests.AddClinic) (*models.Clinic, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Clinic), args.Error(1)
}

func (m *MockDoctorUsecase) UpdateClinic(ctx context.Context, session *models.Session, request *requests.UpdateClinic) error {
	args := m.Called(ctx, session, request)
	return args.Error(0)
}

func (m *MockDoctorUsecase) DeleteClinic(ctx context.Context, session *models.Session, request *requests.DeleteClinic) error {
	args := m.Called(ctx, session, request)
	return args.Error(0)
}

func (m *MockDoctorUsecase) RequestEdit(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorUsecase) Resubmit(ctx context.Context, doctorID string, request *requests.ResubmitDoctor) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func TestDoctorRouter_ApplicationEndpoints(t *testing.T) {
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}

	newRouter := func(sessionService *MockSessionService, usecase *MockDoctorUsecase) chi.Router {
		logger := zap.NewNop()
		mw := &middlewares.Middlewares{
			Log:            logger,
			SessionService: sessionService,
			InternalConfig: internalConfig,
		}
		ctrl := controllers.NewDoctorController(logger, usecase, new(MockStorageService), 5)
		router := chi.NewRouter()
		attachDoctorRoutes(router, mw, ctrl)
		return router
	}

	t.Run("Rejected Application Readable Without Session", func(t *testing.T) {
		sessionService := new(MockSessionService)
		usecase := new(MockDoctorUsecase)

		reason := "syndicate card unreadable"
		rejected := &models.Doctor{
			ID:              "doc-9",
			Status:          models.DoctorStatusRejected,
			RejectionReason: &reason,
		}
		usecase.On("RequestEdit", mock.Anything, "doc-9").Return(rejected, nil)

		req := httptest.NewRequest("GET", "/doc-9/application", nil)

		rr := httptest.NewRecorder()
		newRouter(sessionService, usecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "a rejected doctor holds no session, so the route must not demand one")
		usecase.AssertExpectations(t)
		sessionService.AssertNotCalled(t, "GetSession")
	})

	t.Run("Resubmit Without Session Uses Path ID", func(t *testing.T) {
		sessionService := new(MockSessionService)
		usecase := new(MockDoctorUsecase)

		usecase.On("Resubmit", mock.Anything, "doc-9", mock.MatchedBy(func(request *requests.ResubmitDoctor) bool {
			return request.Field != nil && *request.Field == "dermatology"
		})).Return(&models.Doctor{ID: "doc-9", Status: models.DoctorStatusPending}, nil)

		var body bytes.Buffer
		form := multipart.NewWriter(&body)
		assert.NoError(t, form.WriteField("field", "dermatology"))
		assert.NoError(t, form.Close())

		req := httptest.NewRequest("PUT", "/doc-9/application", &body)
		req.Header.Set("Content-Type", form.FormDataContentType())

		rr := httptest.NewRecorder()
		newRouter(sessionService, usecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("Non Rejected Application Refused", func(t *testing.T) {
		sessionService := new(MockSessionService)
		usecase := new(MockDoctorUsecase)

		usecase.On("RequestEdit", mock.Anything, "doc-1").Return(nil, exceptions.ErrDoctorNotRejected(nil))

		req := httptest.NewRequest("GET", "/doc-1/application", nil)

		rr := httptest.NewRecorder()
		newRouter(sessionService, usecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "the status gate is the only access control on this route")
	})

	t.Run("Profile Still Requires Session", func(t *testing.T) {
		sessionService := new(MockSessionService)
		usecase := new(MockDoctorUsecase)

		req := httptest.NewRequest("GET", "/profile", nil)

		rr := httptest.NewRecorder()
		newRouter(sessionService, usecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		usecase.AssertNotCalled(t, "GetProfile")
	})
}
