package requests

import "time"

type ConsultationData struct {
	ConsultationDate time.Time `json:"consultationDate" validate:"required"`
	Description      string    `json:"consultationDescription"`
	Status           string    `json:"consultationStatus" validate:"omitempty,oneof=Pending Scheduled Completed"`
}

type CreateEncounter struct {
	DoctorName    string   `json:"doctorName" validate:"required"`
	DoctorPhone   string   `json:"doctorPhone" validate:"required"`
	Diagnosis     []string `json:"diagnosis" validate:"required,min=1"`
	TreatmentPlan string   `json:"treatmentPlan" validate:"required"`

	// Only consumed when the encounter is created as a follow-up; silently
	// dropped otherwise.
	Consultations []ConsultationData `json:"consultations"`

	// Resolved to stored object paths by the upload collaborator.
	XrayPaths      []string `json:"-"`
	LabResultPaths []string `json:"-"`
}

type PrescriptionInstructionData struct {
	Medication string `json:"medication" validate:"required"`
	Dosage     string `json:"dosage"`
	Frequency  int    `json:"frequency" validate:"gte=0"`
	Duration   int    `json:"duration" validate:"gte=0"`
	Notes      string `json:"notes"`
}

type CreatePrescriptionEncounter struct {
	FollowUpDate *time.Time                    `json:"followUpDate,omitempty"`
	Notes        string                        `json:"notes"`
	Instructions []PrescriptionInstructionData `json:"prescriptionInstruction" validate:"omitempty,dive"`
}

// UpdatePrescription replaces the matched prescription wholesale; it is not a
// merge, so absent fields end up absent in the stored sub-document.
type UpdatePrescription struct {
	PrescriptionDate time.Time                     `json:"prescriptionDate" validate:"required"`
	FollowUpDate     *time.Time                    `json:"followUpDate,omitempty"`
	Instructions     []PrescriptionInstructionData `json:"prescriptionInstruction" validate:"omitempty,dive"`
	Notes            string                        `json:"notes"`
	Status           string                        `json:"prescriptionStatus" validate:"required,oneof=Pending Issued Expired"`
}

type UpdateConsultation struct {
	ConsultationDate time.Time `json:"consultationDate" validate:"required"`
	Description      string    `json:"consultationDescription"`
	Status           string    `json:"consultationStatus" validate:"required,oneof=Pending Scheduled Completed"`
}
