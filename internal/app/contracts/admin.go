package contracts

import (
	"context"

	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/dto/requests"
)

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) (adminID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// CredentialingUsecase holds the admin-only operations that drive a
// provider through the credentialing state machine. Role checks happen in
// the delivery layer against the verified session, never against request
// payload fields.
type CredentialingUsecase interface {
	RegisterAdmin(ctx context.Context, request *requests.RegisterAdmin) error
	Activate(ctx context.Context, doctorID string) error
	Reject(ctx context.Context, request *requests.RejectDoctor) error
	Ban(ctx context.Context, doctorID string) error
	Suspend(ctx context.Context, request *requests.SuspendDoctor) error
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	ListPatients(ctx context.Context) ([]models.Patient, error)
}
