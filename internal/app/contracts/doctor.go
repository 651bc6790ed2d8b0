package contracts

import (
	"context"

	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/dto/requests"
	"bimar-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAllByStatus(ctx context.Context, status models.DoctorStatus) ([]models.Doctor, error)
	FindAllByStatusAndField(ctx context.Context, status models.DoctorStatus, field string) ([]models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)

	// UpdateFields applies a flat partial update keyed by bson field name.
	UpdateFields(ctx context.Context, email string, fields map[string]interface{}) (matched int64, err error)
	UpdatePassword(ctx context.Context, email string, hashedPassword string) (matched int64, err error)
	DeleteByEmail(ctx context.Context, email string) (deleted int64, err error)

	UpdateStatus(ctx context.Context, doctorID string, status models.DoctorStatus) (matched int64, err error)
	UpdateStatusWithRejection(ctx context.Context, doctorID string, status models.DoctorStatus, rejectionReason string) (matched int64, err error)
	UpdateStatusWithSuspension(ctx context.Context, doctorID string, status models.DoctorStatus, details *models.SuspensionDetails) (matched int64, err error)

	// ResubmitApplication rewrites the submitted fields, resets the status to
	// pending and clears any rejection reason, all in one write.
	ResubmitApplication(ctx context.Context, doctorID string, fields map[string]interface{}) (matched int64, err error)

	AddClinic(ctx context.Context, doctorEmail string, clinic *models.Clinic) (matched int64, err error)
	UpdateClinic(ctx context.Context, doctorEmail, clinicID string, fields map[string]interface{}) (matched int64, err error)
	RemoveClinic(ctx context.Context, doctorEmail, clinicID string) (modified int64, err error)
}

type DoctorUsecase interface {
	Register(ctx context.Context, request *requests.RegisterDoctor) (*responses.RegisterDoctor, error)
	Login(ctx context.Context, request *requests.LoginDoctor) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error

	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	VerifyOTP(ctx context.Context, request *requests.VerifyOTP) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error

	GetProfile(ctx context.Context, session *models.Session) (*models.Doctor, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctor) error
	Delete(ctx context.Context, request *requests.DeleteDoctor) error
	// ListActive lists credentialed doctors, optionally narrowed to one
	// specialty field.
	ListActive(ctx context.Context, field string) ([]models.Doctor, error)

	AddClinic(ctx context.Context, session *models.Session, request *requests.AddClinic) (*models.Clinic, error)
	UpdateClinic(ctx context.Context, session *models.Session, request *requests.UpdateClinic) error
	DeleteClinic(ctx context.Context, session *models.Session, request *requests.DeleteClinic) error

	RequestEdit(ctx context.Context, doctorID string) (*models.Doctor, error)
	Resubmit(ctx context.Context, doctorID string, request *requests.ResubmitDoctor) (*models.Doctor, error)
}
