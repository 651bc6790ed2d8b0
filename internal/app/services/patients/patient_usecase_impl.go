package patients

import (
	"context"
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

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			SessionService:    sessionService,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) Register(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterPatient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	existing, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
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

	patient := &models.Patient{
		ID:       uuid.NewString(),
		Name:     request.Name,
		Phone:    request.Phone,
		Email:    request.Email,
		Password: hashedPassword,
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Register error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "patient_registered", requestID,
		zap.String("patient_id", patientID),
	)
	return &responses.RegisterPatient{PatientID: patientID}, nil
}

func (uc *patientUsecase) Login(ctx context.Context, request *requests.LoginPatient) (*responses.Login, error) {
	patient, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	if !utils.CheckPasswordHash(request.Password, patient.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session := &models.Session{
		SessionID: uuid.NewString(),
		SubjectID: patient.ID,
		Email:     patient.Email,
		Role:      constvars.BimarRolePatient,
	}
	ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour

	token, err := uc.SessionService.CreateSession(ctx, session, ttl)
	if err != nil {
		return nil, err
	}
	return &responses.Login{Token: token, Role: constvars.BimarRolePatient}, nil
}

func (uc *patientUsecase) Logout(ctx context.Context, session *models.Session) error {
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *patientUsecase) CreateMedicalRecord(ctx context.Context, session *models.Session, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error) {
	record := &models.MedicalRecord{
		Allergies:          request.Allergies,
		ChronicMedications: request.ChronicMedications,
		Surgeries:          request.Surgeries,
		ChronicDiseases:    request.ChronicDiseases,
		Vaccinations:       request.Vaccinations,
		BloodType:          request.BloodType,
	}
	if request.FamilyHistory != nil {
		record.FamilyHistory = &models.FamilyHistory{
			Genetics:         request.FamilyHistory.Genetics,
			GeneticsDiseases: request.FamilyHistory.GeneticsDiseases,
		}
	}

	matched, err := uc.PatientRepository.UpdateMedicalRecord(ctx, session.Email, record)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return record, nil
}

func (uc *patientUsecase) GetMedicalRecord(ctx context.Context, session *models.Session) (*models.MedicalRecord, error) {
	patient, err := uc.PatientRepository.FindByEmail(ctx, session.Email)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient.MedicalRecord, nil
}

// UpdateMedicalRecord merges the supplied fields into the stored record and
// writes the merged document back whole.
func (uc *patientUsecase) UpdateMedicalRecord(ctx context.Context, session *models.Session, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error) {
	patient, err := uc.PatientRepository.FindByEmail(ctx, session.Email)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	record := patient.MedicalRecord
	if record == nil {
		record = &models.MedicalRecord{}
	}
	if request.Allergies != nil {
		record.Allergies = request.Allergies
	}
	if request.ChronicMedications != nil {
		record.ChronicMedications = request.ChronicMedications
	}
	if request.Surgeries != nil {
		record.Surgeries = request.Surgeries
	}
	if request.ChronicDiseases != nil {
		record.ChronicDiseases = request.ChronicDiseases
	}
	if request.Vaccinations != nil {
		record.Vaccinations = request.Vaccinations
	}
	if request.BloodType != "" {
		record.BloodType = request.BloodType
	}
	if request.FamilyHistory != nil {
		record.FamilyHistory = &models.FamilyHistory{
			Genetics:         request.FamilyHistory.Genetics,
			GeneticsDiseases: request.FamilyHistory.GeneticsDiseases,
		}
	}

	if _, err := uc.PatientRepository.UpdateMedicalRecord(ctx, session.Email, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *patientUsecase) DeleteMedicalRecord(ctx context.Context, session *models.Session) error {
	matched, err := uc.PatientRepository.UnsetMedicalRecord(ctx, session.Email)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrPatientNotFound(nil)
	}
	return nil
}
