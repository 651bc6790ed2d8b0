package patients

import (
	"context"
	"sync"
	"time"

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

type diagnosisUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

var (
	diagnosisUsecaseInstance contracts.DiagnosisUsecase
	onceDiagnosisUsecase     sync.Once
)

func NewDiagnosisUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.DiagnosisUsecase {
	onceDiagnosisUsecase.Do(func() {
		diagnosisUsecaseInstance = &diagnosisUsecase{
			PatientRepository: patientRepository,
			Log:               logger,
		}
	})
	return diagnosisUsecaseInstance
}

// CreateEncounter appends one encounter to the caller's diagnosis history in
// a single write. The consultations field is materialized only for follow-up
// encounters; a stored standard encounter never carries the field at all.
func (uc *diagnosisUsecase) CreateEncounter(ctx context.Context, session *models.Session, request *requests.CreateEncounter, isFollowUp bool) (*responses.CreateEncounter, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("diagnosisUsecase.CreateEncounter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("follow_up", isFollowUp),
	)

	encounter := &models.DiagnosisEncounter{
		EncounterID:   uuid.NewString(),
		Date:          time.Now(),
		DoctorName:    request.DoctorName,
		DoctorPhone:   request.DoctorPhone,
		Diagnosis:     request.Diagnosis,
		TreatmentPlan: request.TreatmentPlan,
		Xray:          request.XrayPaths,
		LabResults:    request.LabResultPaths,
	}
	if isFollowUp {
		encounter.Consultations = convertConsultations(request.Consultations)
	}

	matched, err := uc.PatientRepository.AppendEncounter(ctx, session.SubjectID, encounter)
	if err != nil {
		uc.Log.Error("diagnosisUsecase.CreateEncounter error appending encounter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if matched == 0 {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	utils.LogBusinessEvent(uc.Log, "encounter_created", requestID,
		zap.String("encounter_id", encounter.EncounterID),
		zap.Bool("follow_up", isFollowUp),
	)
	return &responses.CreateEncounter{
		EncounterID: encounter.EncounterID,
		FollowUp:    encounter.IsFollowUp(),
	}, nil
}

// CreatePrescriptionEncounter appends a prescription-only encounter: the
// clinical fields stay zero and only the prescription sub-document is
// populated. A follow-up date makes the new encounter a follow-up, so the
// consultations field is materialized alongside it.
func (uc *diagnosisUsecase) CreatePrescriptionEncounter(ctx context.Context, patientID string, request *requests.CreatePrescriptionEncounter) (*responses.CreatePrescriptionEncounter, error) {
	requestID := utils.GetRequestID(ctx)

	prescription := &models.Prescription{
		PrescriptionID:   uuid.NewString(),
		PrescriptionDate: time.Now(),
		FollowUpDate:     request.FollowUpDate,
		Instructions:     convertInstructions(request.Instructions),
		Notes:            request.Notes,
		Status:           models.PrescriptionStatusPending,
	}
	encounter := &models.DiagnosisEncounter{
		EncounterID:  uuid.NewString(),
		Date:         time.Now(),
		Prescription: prescription,
	}
	if request.FollowUpDate != nil {
		encounter.Consultations = []models.Consultation{}
	}

	matched, err := uc.PatientRepository.AppendEncounter(ctx, patientID, encounter)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	utils.LogBusinessEvent(uc.Log, "prescription_created", requestID,
		zap.String("encounter_id", encounter.EncounterID),
		zap.String("prescription_id", prescription.PrescriptionID),
	)
	return &responses.CreatePrescriptionEncounter{
		EncounterID:    encounter.EncounterID,
		PrescriptionID: prescription.PrescriptionID,
	}, nil
}

func (uc *diagnosisUsecase) GetEncounters(ctx context.Context, session *models.Session) ([]models.DiagnosisEncounter, error) {
	patient, err := uc.PatientRepository.FindByEmail(ctx, session.Email)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient.Diagnosis, nil
}

// UpdatePrescription replaces the stored prescription wholesale, keeping only
// its identity. Fields missing from the request end up missing in the store.
func (uc *diagnosisUsecase) UpdatePrescription(ctx context.Context, prescriptionID string, request *requests.UpdatePrescription) error {
	prescription := &models.Prescription{
		PrescriptionID:   prescriptionID,
		PrescriptionDate: request.PrescriptionDate,
		FollowUpDate:     request.FollowUpDate,
		Instructions:     convertInstructions(request.Instructions),
		Notes:            request.Notes,
		Status:           models.PrescriptionStatus(request.Status),
	}

	matched, err := uc.PatientRepository.ReplacePrescription(ctx, prescriptionID, prescription)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrPrescriptionNotFound(nil)
	}
	return nil
}

func (uc *diagnosisUsecase) DeletePrescription(ctx context.Context, prescriptionID string) error {
	matched, err := uc.PatientRepository.UnsetPrescription(ctx, prescriptionID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrPrescriptionNotFound(nil)
	}
	return nil
}

func (uc *diagnosisUsecase) UpdateConsultation(ctx context.Context, consultationID string, request *requests.UpdateConsultation) error {
	consultation := &models.Consultation{
		ConsultationID:   consultationID,
		ConsultationDate: request.ConsultationDate,
		Description:      request.Description,
		Status:           models.ConsultationStatus(request.Status),
	}

	matched, err := uc.PatientRepository.ReplaceConsultation(ctx, consultationID, consultation)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrConsultationNotFound(nil)
	}
	return nil
}

func (uc *diagnosisUsecase) DeleteConsultation(ctx context.Context, consultationID string) error {
	matched, err := uc.PatientRepository.RemoveConsultation(ctx, consultationID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrConsultationNotFound(nil)
	}
	return nil
}

// convertConsultations always returns a non-nil slice so a follow-up
// encounter stores the consultations field even when no consultation data
// was supplied.
func convertConsultations(in []requests.ConsultationData) []models.Consultation {
	out := make([]models.Consultation, 0, len(in))
	for _, data := range in {
		status := models.ConsultationStatus(data.Status)
		if !status.IsValid() {
			status = models.ConsultationStatusPending
		}
		out = append(out, models.Consultation{
			ConsultationID:   uuid.NewString(),
			ConsultationDate: data.ConsultationDate,
			Description:      data.Description,
			Status:           status,
		})
	}
	return out
}

func convertInstructions(in []requests.PrescriptionInstructionData) []models.PrescriptionInstruction {
	out := make([]models.PrescriptionInstruction, 0, len(in))
	for _, data := range in {
		out = append(out, models.PrescriptionInstruction{
			Medication: data.Medication,
			Dosage:     data.Dosage,
			Frequency:  data.Frequency,
			Duration:   data.Duration,
			Notes:      data.Notes,
		})
	}
	return out
}
