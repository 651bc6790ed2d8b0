package admins

import (
	"context"
	"sync"
	"time"

	"bimar-service/internal/app/contracts"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/dto/requests"
	"bimar-service/internal/pkg/exceptions"
	"bimar-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type credentialingUsecase struct {
	AdminRepository   contracts.AdminRepository
	DoctorRepository  contracts.DoctorRepository
	PatientRepository contracts.PatientRepository
	MailerService     contracts.MailerService
	Log               *zap.Logger
}

var (
	credentialingUsecaseInstance contracts.CredentialingUsecase
	onceCredentialingUsecase     sync.Once
)

func NewCredentialingUsecase(
	adminRepository contracts.AdminRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	mailerService contracts.MailerService,
	logger *zap.Logger,
) contracts.CredentialingUsecase {
	onceCredentialingUsecase.Do(func() {
		credentialingUsecaseInstance = &credentialingUsecase{
			AdminRepository:   adminRepository,
			DoctorRepository:  doctorRepository,
			PatientRepository: patientRepository,
			MailerService:     mailerService,
			Log:               logger,
		}
	})
	return credentialingUsecaseInstance
}

func (uc *credentialingUsecase) RegisterAdmin(ctx context.Context, request *requests.RegisterAdmin) error {
	existing, err := uc.AdminRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	admin := &models.Admin{
		ID:       uuid.NewString(),
		Name:     request.Name,
		Username: request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	_, err = uc.AdminRepository.CreateAdmin(ctx, admin)
	return err
}

// Activate may be applied from any state: it doubles as the administrative
// override that lifts a rejection or a suspension. It sets the status and
// nothing else.
func (uc *credentialingUsecase) Activate(ctx context.Context, doctorID string) error {
	requestID := utils.GetRequestID(ctx)

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return err
	}
	if !doctor.Status.CanTransitionTo(models.DoctorStatusActive) {
		uc.Log.Warn("credentialingUsecase.Activate off-machine transition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("from_status", string(doctor.Status)),
		)
	}

	matched, err := uc.DoctorRepository.UpdateStatus(ctx, doctorID, models.DoctorStatusActive)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrDoctorNotFound(nil)
	}

	uc.publishIntent(ctx, requestID, &models.NotificationIntent{
		Kind:           constvars.NotificationKindDoctorActivated,
		RecipientEmail: doctor.Email,
		TemplateData:   map[string]interface{}{"name": doctor.Name},
	})
	utils.LogBusinessEvent(uc.Log, "doctor_activated", requestID,
		zap.String("doctor_id", doctorID),
	)
	return nil
}

func (uc *credentialingUsecase) Reject(ctx context.Context, request *requests.RejectDoctor) error {
	requestID := utils.GetRequestID(ctx)

	doctor, err := uc.findDoctor(ctx, request.DoctorID)
	if err != nil {
		return err
	}

	matched, err := uc.DoctorRepository.UpdateStatusWithRejection(ctx, request.DoctorID, models.DoctorStatusRejected, request.RejectionReason)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrDoctorNotFound(nil)
	}

	uc.publishIntent(ctx, requestID, &models.NotificationIntent{
		Kind:           constvars.NotificationKindDoctorRejected,
		RecipientEmail: doctor.Email,
		TemplateData: map[string]interface{}{
			"name":   doctor.Name,
			"reason": request.RejectionReason,
		},
	})
	utils.LogBusinessEvent(uc.Log, "doctor_rejected", requestID,
		zap.String("doctor_id", request.DoctorID),
	)
	return nil
}

func (uc *credentialingUsecase) Ban(ctx context.Context, doctorID string) error {
	requestID := utils.GetRequestID(ctx)

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return err
	}

	matched, err := uc.DoctorRepository.UpdateStatus(ctx, doctorID, models.DoctorStatusBanned)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrDoctorNotFound(nil)
	}

	uc.publishIntent(ctx, requestID, &models.NotificationIntent{
		Kind:           constvars.NotificationKindDoctorBanned,
		RecipientEmail: doctor.Email,
		TemplateData:   map[string]interface{}{"name": doctor.Name},
	})
	utils.LogBusinessEvent(uc.Log, "doctor_banned", requestID,
		zap.String("doctor_id", doctorID),
	)
	return nil
}

func (uc *credentialingUsecase) Suspend(ctx context.Context, request *requests.SuspendDoctor) error {
	requestID := utils.GetRequestID(ctx)

	if request.SuspensionReason == "" || request.SuspensionDuration <= 0 {
		return exceptions.ErrSuspensionInvalidArgument(nil)
	}

	doctor, err := uc.findDoctor(ctx, request.DoctorID)
	if err != nil {
		return err
	}

	details := models.NewSuspensionDetails(request.SuspensionReason, time.Now(), request.SuspensionDuration)
	matched, err := uc.DoctorRepository.UpdateStatusWithSuspension(ctx, request.DoctorID, models.DoctorStatusSuspended, details)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrDoctorNotFound(nil)
	}

	uc.publishIntent(ctx, requestID, &models.NotificationIntent{
		Kind:           constvars.NotificationKindDoctorSuspended,
		RecipientEmail: doctor.Email,
		TemplateData: map[string]interface{}{
			"name":    doctor.Name,
			"reason":  details.Reason,
			"endDate": details.EndDate.Format(time.RFC1123),
		},
	})
	utils.LogBusinessEvent(uc.Log, "doctor_suspended", requestID,
		zap.String("doctor_id", request.DoctorID),
		zap.Time("suspension_end", details.EndDate),
	)
	return nil
}

func (uc *credentialingUsecase) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return uc.DoctorRepository.FindAll(ctx)
}

func (uc *credentialingUsecase) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return uc.PatientRepository.FindAll(ctx)
}

func (uc *credentialingUsecase) findDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return doctor, nil
}

// publishIntent is best effort: a queue failure is logged and the already
// committed state change stands.
func (uc *credentialingUsecase) publishIntent(ctx context.Context, requestID string, intent *models.NotificationIntent) {
	if err := uc.MailerService.PublishIntent(ctx, intent); err != nil {
		uc.Log.Warn("credentialingUsecase failed to publish notification intent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("kind", intent.Kind),
			zap.Error(err),
		)
	}
}
