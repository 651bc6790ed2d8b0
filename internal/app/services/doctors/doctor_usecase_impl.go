package doctors

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bimar-service/internal/app/config"
	"bimar-service/internal/app/contracts"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/dto/requests"
	"bimar-service/internal/pkg/dto/responses"
	"bimar-service/internal/pkg/exceptions"
	"bimar-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	otpKeyFormat         = "otp:%s"
	otpVerifiedKeyFormat = "otp_verified:%s"
	otpLength            = 6
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	AdminRepository  contracts.AdminRepository
	RedisRepository  contracts.RedisRepository
	SessionService   contracts.SessionService
	MailerService    contracts.MailerService
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	adminRepository contracts.AdminRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			AdminRepository:  adminRepository,
			RedisRepository:  redisRepository,
			SessionService:   sessionService,
			MailerService:    mailerService,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) Register(ctx context.Context, request *requests.RegisterDoctor) (*responses.RegisterDoctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	doctor := &models.Doctor{
		ID:          uuid.NewString(),
		Name:        request.Name,
		Email:       request.Email,
		Password:    hashedPassword,
		Phone:       request.Phone,
		DateOfBirth: request.DateOfBirth,
		Field:       request.Field,
		Credentials: models.DoctorCredentials{
			NationalID:    request.NationalID,
			SyndicateID:   request.SyndicateID,
			SyndicateCard: request.SyndicateCardPath,
			Certificates:  request.CertificatePaths,
		},
		Status: models.DoctorStatusPending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.Register error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishIntent(ctx, requestID, &models.NotificationIntent{
		Kind:           constvars.NotificationKindDoctorRegistered,
		RecipientEmail: doctor.Email,
		TemplateData:   map[string]interface{}{"name": doctor.Name},
	})

	utils.LogBusinessEvent(uc.Log, "doctor_registered", requestID,
		zap.String("doctor_id", doctorID),
	)
	return &responses.RegisterDoctor{
		DoctorID: doctorID,
		Status:   string(doctor.Status),
	}, nil
}

// Login checks the admin identity space first; an admin match never consults
// the credentialing status. A doctor match must pass CanLogin, except that a
// suspension whose window has already ended is lifted on the spot.
func (uc *doctorUsecase) Login(ctx context.Context, request *requests.LoginDoctor) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	admin, err := uc.AdminRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if admin != nil {
		if !utils.CheckPasswordHash(request.Password, admin.Password) {
			return nil, exceptions.ErrInvalidEmailOrPassword(nil)
		}
		return uc.createLoginSession(ctx, admin.ID, admin.Email, constvars.BimarRoleAdmin)
	}

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	if !utils.CheckPasswordHash(request.Password, doctor.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !doctor.Status.CanLogin() {
		if !uc.liftExpiredSuspension(ctx, requestID, doctor) {
			return nil, exceptions.ErrAccountNotActive(string(doctor.Status))
		}
	}

	return uc.createLoginSession(ctx, doctor.ID, doctor.Email, constvars.BimarRoleDoctor)
}

func (uc *doctorUsecase) liftExpiredSuspension(ctx context.Context, requestID string, doctor *models.Doctor) bool {
	if doctor.Status != models.DoctorStatusSuspended || doctor.Suspension == nil {
		return false
	}
	if time.Now().Before(doctor.Suspension.EndDate) {
		return false
	}

	if _, err := uc.DoctorRepository.UpdateStatus(ctx, doctor.ID, models.DoctorStatusActive); err != nil {
		uc.Log.Error("doctorUsecase.Login error lifting expired suspension",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false
	}
	doctor.Status = models.DoctorStatusActive
	utils.LogBusinessEvent(uc.Log, "doctor_suspension_lifted", requestID,
		zap.String("doctor_id", doctor.ID),
	)
	return true
}

func (uc *doctorUsecase) createLoginSession(ctx context.Context, subjectID, email, role string) (*responses.Login, error) {
	session := &models.Session{
		SessionID: uuid.NewString(),
		SubjectID: subjectID,
		Email:     email,
		Role:      role,
	}
	ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour

	token, err := uc.SessionService.CreateSession(ctx, session, ttl)
	if err != nil {
		return nil, err
	}
	return &responses.Login{Token: token, Role: role}, nil
}

func (uc *doctorUsecase) Logout(ctx context.Context, session *models.Session) error {
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *doctorUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	otp, err := utils.GenerateOTP(otpLength)
	if err != nil {
		return exceptions.ErrTokenGenerate(err)
	}

	ttl := time.Duration(uc.InternalConfig.App.OTPExpTimeInMinute) * time.Minute
	key := fmt.Sprintf(otpKeyFormat, request.Email)
	if err := uc.RedisRepository.Set(ctx, key, otp, ttl); err != nil {
		return err
	}

	intent := &models.NotificationIntent{
		Kind:           constvars.NotificationKindPasswordResetOTP,
		RecipientEmail: doctor.Email,
		TemplateData:   map[string]interface{}{"name": doctor.Name, "otp": otp},
	}
	if err := uc.MailerService.PublishIntent(ctx, intent); err != nil {
		uc.Log.Error("doctorUsecase.ForgotPassword error publishing OTP intent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *doctorUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) error {
	if err := uc.checkOTP(ctx, request.Email, request.OTP); err != nil {
		return err
	}

	ttl := time.Duration(uc.InternalConfig.App.OTPExpTimeInMinute) * time.Minute
	key := fmt.Sprintf(otpVerifiedKeyFormat, request.Email)
	return uc.RedisRepository.Set(ctx, key, true, ttl)
}

// ResetPassword accepts either a prior VerifyOTP, marked by the verified flag
// in Redis, or the raw OTP supplied on the request itself.
func (uc *doctorUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	requestID := utils.GetRequestID(ctx)

	verified, err := uc.RedisRepository.Get(ctx, fmt.Sprintf(otpVerifiedKeyFormat, request.Email))
	if err != nil {
		return err
	}
	if verified == "" {
		if err := uc.checkOTP(ctx, request.Email, request.OTP); err != nil {
			return err
		}
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	matched, err := uc.DoctorRepository.UpdatePassword(ctx, request.Email, hashedPassword)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrDoctorNotFound(nil)
	}

	uc.RedisRepository.Delete(ctx, fmt.Sprintf(otpKeyFormat, request.Email))
	uc.RedisRepository.Delete(ctx, fmt.Sprintf(otpVerifiedKeyFormat, request.Email))

	utils.LogBusinessEvent(uc.Log, "doctor_password_reset", requestID,
		zap.String("doctor_email", request.Email),
	)
	return nil
}

func (uc *doctorUsecase) checkOTP(ctx context.Context, email, otp string) error {
	stored, err := uc.RedisRepository.Get(ctx, fmt.Sprintf(otpKeyFormat, email))
	if err != nil {
		return err
	}
	if stored == "" {
		return exceptions.ErrOTPExpired(nil)
	}
	// OTP values round-trip through JSON marshalling as quoted strings.
	if stored != fmt.Sprintf("%q", otp) {
		return exceptions.ErrOTPInvalid(nil)
	}
	return nil
}

func (uc *doctorUsecase) GetProfile(ctx context.Context, session *models.Session) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByEmail(ctx, session.Email)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return doctor, nil
}

func (uc *doctorUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctor) error {
	fields := make(map[string]interface{})
	if request.Name != nil {
		fields["doctorName"] = *request.Name
	}
	if request.Phone != nil {
		fields["doctorPhone"] = *request.Phone
	}
	if request.DateOfBirth != nil {
		fields["doctorDateOfBirth"] = *request.DateOfBirth
	}
	if request.NewEmail != nil {
		fields["doctorEmail"] = *request.NewEmail
	}

	matched, err := uc.DoctorRepository.UpdateFields(ctx, request.Email, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrDoctorNotFound(nil)
	}
	return nil
}

func (uc *doctorUsecase) Delete(ctx context.Context, request *requests.DeleteDoctor) error {
	deleted, err := uc.DoctorRepository.DeleteByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return exceptions.ErrDoctorNotFound(nil)
	}
	return nil
}

func (uc *doctorUsecase) ListActive(ctx context.Context, field string) ([]models.Doctor, error) {
	if field != "" {
		return uc.DoctorRepository.FindAllByStatusAndField(ctx, models.DoctorStatusActive, field)
	}
	return uc.DoctorRepository.FindAllByStatus(ctx, models.DoctorStatusActive)
}

func (uc *doctorUsecase) AddClinic(ctx context.Context, session *models.Session, request *requests.AddClinic) (*models.Clinic, error) {
	requestID := utils.GetRequestID(ctx)

	clinic := &models.Clinic{
		ClinicID:      uuid.NewString(),
		Name:          request.Name,
		License:       request.LicensePath,
		City:          request.City,
		Area:          request.Area,
		Address:       request.Address,
		Phones:        request.Phones,
		Email:         request.Email,
		Website:       request.Website,
		WorkDays:      convertWorkDays(request.WorkDays),
		LocationLinks: request.LocationLinks,
		Price:         request.Price,
	}
	if err := models.ValidateWorkDays(clinic.WorkDays); err != nil {
		return nil, exceptions.ErrWorkDayDescriptorInvalid(err)
	}

	matched, err := uc.DoctorRepository.AddClinic(ctx, session.Email, clinic)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	utils.LogBusinessEvent(uc.Log, "clinic_added", requestID,
		zap.String("clinic_id", clinic.ClinicID),
	)
	return clinic, nil
}

func (uc *doctorUsecase) UpdateClinic(ctx context.Context, session *models.Session, request *requests.UpdateClinic) error {
	fields := make(map[string]interface{})
	if request.Name != nil {
		fields["clinicName"] = *request.Name
	}
	if request.City != nil {
		fields["clinicCity"] = *request.City
	}
	if request.Area != nil {
		fields["clinicArea"] = *request.Area
	}
	if request.Address != nil {
		fields["clinicAddress"] = *request.Address
	}
	if request.Phones != nil {
		fields["clinicPhone"] = request.Phones
	}
	if request.Email != nil {
		fields["clinicEmail"] = *request.Email
	}
	if request.Website != nil {
		fields["clinicWebsite"] = *request.Website
	}
	if request.WorkDays != nil {
		workDays := convertWorkDays(request.WorkDays)
		if err := models.ValidateWorkDays(workDays); err != nil {
			return exceptions.ErrWorkDayDescriptorInvalid(err)
		}
		fields["clinicWorkDays"] = workDays
	}
	if request.LocationLinks != nil {
		fields["clinicLocationLinks"] = *request.LocationLinks
	}
	if request.Price != nil {
		fields["price"] = *request.Price
	}

	matched, err := uc.DoctorRepository.UpdateClinic(ctx, session.Email, request.ClinicID, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrClinicNotFound(nil)
	}
	return nil
}

func (uc *doctorUsecase) DeleteClinic(ctx context.Context, session *models.Session, request *requests.DeleteClinic) error {
	matched, err := uc.DoctorRepository.RemoveClinic(ctx, session.Email, request.ClinicID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrClinicNotFound(nil)
	}
	return nil
}

// RequestEdit returns the rejected application so the doctor can review it
// before resubmitting. Any other status is refused.
func (uc *doctorUsecase) RequestEdit(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	if doctor.Status != models.DoctorStatusRejected {
		return nil, exceptions.ErrDoctorNotRejected(nil)
	}
	return doctor, nil
}

func (uc *doctorUsecase) Resubmit(ctx context.Context, doctorID string, request *requests.ResubmitDoctor) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	if doctor.Status != models.DoctorStatusRejected {
		return nil, exceptions.ErrDoctorNotRejected(nil)
	}

	fields := make(map[string]interface{})
	if request.Name != nil {
		fields["doctorName"] = *request.Name
	}
	if request.Phone != nil {
		fields["doctorPhone"] = *request.Phone
	}
	if request.DateOfBirth != nil {
		fields["doctorDateOfBirth"] = *request.DateOfBirth
	}
	if request.Field != nil {
		fields["field"] = *request.Field
	}
	if request.NationalID != nil {
		fields["credentials.nationalId"] = *request.NationalID
	}
	if request.SyndicateID != nil {
		fields["credentials.syndicateId"] = *request.SyndicateID
	}
	if request.SyndicateCardPath != "" {
		fields["credentials.syndicateCard"] = request.SyndicateCardPath
	}
	if len(request.CertificatePaths) > 0 {
		fields["credentials.certificates"] = request.CertificatePaths
	}

	if _, err := uc.DoctorRepository.ResubmitApplication(ctx, doctorID, fields); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "doctor_resubmitted", requestID,
		zap.String("doctor_id", doctorID),
	)
	return uc.DoctorRepository.FindByID(ctx, doctorID)
}

// publishIntent is best effort: notification failures are logged and never
// surface to the caller.
func (uc *doctorUsecase) publishIntent(ctx context.Context, requestID string, intent *models.NotificationIntent) {
	if err := uc.MailerService.PublishIntent(ctx, intent); err != nil {
		uc.Log.Warn("doctorUsecase failed to publish notification intent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("kind", intent.Kind),
			zap.Error(err),
		)
	}
}

func convertWorkDays(in []requests.WorkDay) []models.WorkDay {
	out := make([]models.WorkDay, 0, len(in))
	for _, day := range in {
		out = append(out, models.WorkDay{
			Day:          day.Day,
			WorkingHours: day.WorkingHours,
			MaxBookings:  day.MaxBookings,
		})
	}
	return out
}
