package contracts

import (
	"context"

	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/dto/requests"
	"bimar-service/internal/pkg/dto/responses"
)

// PatientRepository wraps the document-store primitives the clinical record
// aggregate needs: find-one-by-filter, save-whole-document, positional
// update and positional unset. Finders return (nil, nil) when no document
// matches; mutation methods report how many documents were touched so the
// caller can tell a no-op from a hit.
type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	ReplacePatient(ctx context.Context, patient *models.Patient) error

	// AppendEncounter pushes one fully-built encounter document onto the
	// diagnosis array in a single write.
	AppendEncounter(ctx context.Context, patientID string, encounter *models.DiagnosisEncounter) (matched int64, err error)

	ReplacePrescription(ctx context.Context, prescriptionID string, prescription *models.Prescription) (matched int64, err error)
	UnsetPrescription(ctx context.Context, prescriptionID string) (modified int64, err error)
	ReplaceConsultation(ctx context.Context, consultationID string, consultation *models.Consultation) (matched int64, err error)
	RemoveConsultation(ctx context.Context, consultationID string) (matched int64, err error)

	UpdateMedicalRecord(ctx context.Context, email string, record *models.MedicalRecord) (matched int64, err error)
	UnsetMedicalRecord(ctx context.Context, email string) (matched int64, err error)
}

type DiagnosisUsecase interface {
	CreateEncounter(ctx context.Context, session *models.Session, request *requests.CreateEncounter, isFollowUp bool) (*responses.CreateEncounter, error)
	CreatePrescriptionEncounter(ctx context.Context, patientID string, request *requests.CreatePrescriptionEncounter) (*responses.CreatePrescriptionEncounter, error)
	GetEncounters(ctx context.Context, session *models.Session) ([]models.DiagnosisEncounter, error)
	UpdatePrescription(ctx context.Context, prescriptionID string, request *requests.UpdatePrescription) error
	DeletePrescription(ctx context.Context, prescriptionID string) error
	UpdateConsultation(ctx context.Context, consultationID string, request *requests.UpdateConsultation) error
	DeleteConsultation(ctx context.Context, consultationID string) error
}

type PatientUsecase interface {
	Register(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterPatient, error)
	Login(ctx context.Context, request *requests.LoginPatient) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	CreateMedicalRecord(ctx context.Context, session *models.Session, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error)
	GetMedicalRecord(ctx context.Context, session *models.Session) (*models.MedicalRecord, error)
	UpdateMedicalRecord(ctx context.Context, session *models.Session, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error)
	DeleteMedicalRecord(ctx context.Context, session *models.Session) error
}
