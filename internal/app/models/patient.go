package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type PrescriptionStatus string

const (
	PrescriptionStatusPending PrescriptionStatus = "Pending"
	PrescriptionStatusIssued  PrescriptionStatus = "Issued"
	PrescriptionStatusExpired PrescriptionStatus = "Expired"
)

func (s PrescriptionStatus) IsValid() bool {
	switch s {
	case PrescriptionStatusPending, PrescriptionStatusIssued, PrescriptionStatusExpired:
		return true
	}
	return false
}

type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "Pending"
	ConsultationStatusScheduled ConsultationStatus = "Scheduled"
	ConsultationStatusCompleted ConsultationStatus = "Completed"
)

func (s ConsultationStatus) IsValid() bool {
	switch s {
	case ConsultationStatusPending, ConsultationStatusScheduled, ConsultationStatusCompleted:
		return true
	}
	return false
}

type Patient struct {
	ID             string               `json:"id" bson:"_id,omitempty"`
	Name           string               `json:"userName" bson:"userName"`
	Phone          string               `json:"userPhone" bson:"userPhone"`
	Email          string               `json:"userEmail" bson:"userEmail"`
	Password       string               `json:"-" bson:"userPassword"`
	MedicalRecord  *MedicalRecord       `json:"medicalRecord,omitempty" bson:"medicalRecord,omitempty"`
	Diagnosis      []DiagnosisEncounter `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	PersonalRecord *PersonalRecord      `json:"personalRecords,omitempty" bson:"personalRecords,omitempty"`
}

// MedicalRecord holds the static part of the clinical record aggregate.
type MedicalRecord struct {
	Allergies          []string       `json:"allergies" bson:"allergies"`
	ChronicMedications []string       `json:"chronicMedications" bson:"chronicMedications"`
	Surgeries          []string       `json:"surgeries" bson:"surgeries"`
	ChronicDiseases    []string       `json:"chronicDiseases" bson:"chronicDiseases"`
	Vaccinations       []string       `json:"vaccinations" bson:"vaccinations"`
	BloodType          string         `json:"bloodType" bson:"bloodType"`
	FamilyHistory      *FamilyHistory `json:"familyHistory,omitempty" bson:"familyHistory,omitempty"`
}

type FamilyHistory struct {
	Genetics         []string `json:"genetics" bson:"genetics"`
	GeneticsDiseases []string `json:"geneticsDiseases" bson:"geneticsDiseases"`
}

type PersonalRecord struct {
	City             string   `json:"city" bson:"city"`
	Area             string   `json:"area" bson:"area"`
	Weight           float64  `json:"userWeight" bson:"userWeight"`
	Height           float64  `json:"userHeight" bson:"userHeight"`
	DateOfBirth      string   `json:"dateOfBirth" bson:"dateOfBirth"`
	EmergencyContact string   `json:"emergencyContact" bson:"emergencyContact"`
	WorkName         string   `json:"workName" bson:"workName"`
	WorkPlace        string   `json:"workPlace" bson:"workPlace"`
	Smoking          string   `json:"smoking" bson:"smoking"`
	Alcohol          string   `json:"alcohol" bson:"alcohol"`
	PetsTypes        []string `json:"petsTypes" bson:"petsTypes"`
	FamilyStatus     string   `json:"familyStatus" bson:"familyStatus"`
	Gender           string   `json:"gender" bson:"gender"`
}

// DiagnosisEncounter is one visit inside a patient's diagnosis history.
//
// Consultations carries double meaning: a nil slice means the field is absent
// from the stored document and the encounter is a standard one; a non-nil
// slice (even empty) means the encounter is a follow-up. Downstream reads
// branch on presence, so the two must never be conflated.
type DiagnosisEncounter struct {
	EncounterID   string         `json:"encounterId" bson:"encounterId"`
	Date          time.Time      `json:"date" bson:"date"`
	DoctorName    string         `json:"doctorName" bson:"doctorName"`
	DoctorPhone   string         `json:"doctorPhone" bson:"doctorPhone"`
	Diagnosis     []string       `json:"diagnosis" bson:"diagnosis"`
	TreatmentPlan string         `json:"treatmentPlan" bson:"treatmentPlan"`
	Xray          []string       `json:"xray" bson:"xray"`
	LabResults    []string       `json:"labResults" bson:"labResults"`
	Prescription  *Prescription  `json:"prescription,omitempty" bson:"prescription,omitempty"`
	Consultations []Consultation `json:"consultations,omitempty" bson:"consultations,omitempty"`
}

// IsFollowUp reports whether the consultations field is present on the
// persisted encounter.
func (e *DiagnosisEncounter) IsFollowUp() bool {
	return e.Consultations != nil
}

// ConvertToBsonM builds the exact document that is pushed onto the diagnosis
// array. The consultations key is included only for follow-up encounters, so
// the single append write already carries the correct field presence and no
// second unset call is ever needed.
func (e *DiagnosisEncounter) ConvertToBsonM() bson.M {
	doc := bson.M{
		"encounterId":   e.EncounterID,
		"date":          e.Date,
		"doctorName":    e.DoctorName,
		"doctorPhone":   e.DoctorPhone,
		"diagnosis":     e.Diagnosis,
		"treatmentPlan": e.TreatmentPlan,
		"xray":          e.Xray,
		"labResults":    e.LabResults,
	}
	if e.Prescription != nil {
		doc["prescription"] = e.Prescription
	}
	if e.Consultations != nil {
		doc["consultations"] = e.Consultations
	}
	return doc
}

type Prescription struct {
	PrescriptionID   string                    `json:"prescriptionId" bson:"prescriptionId"`
	PrescriptionDate time.Time                 `json:"prescriptionDate" bson:"prescriptionDate"`
	FollowUpDate     *time.Time                `json:"followUpDate,omitempty" bson:"followUpDate,omitempty"`
	Instructions     []PrescriptionInstruction `json:"prescriptionInstruction" bson:"prescriptionInstruction"`
	Notes            string                    `json:"notes" bson:"notes"`
	Status           PrescriptionStatus        `json:"prescriptionStatus" bson:"prescriptionStatus"`
}

type PrescriptionInstruction struct {
	Medication string `json:"medication" bson:"medication"`
	Dosage     string `json:"dosage" bson:"dosage"`
	Frequency  int    `json:"frequency" bson:"frequency"`
	Duration   int    `json:"duration" bson:"duration"`
	Notes      string `json:"notes" bson:"notes"`
}

type Consultation struct {
	ConsultationID   string             `json:"consultationId" bson:"consultationId"`
	ConsultationDate time.Time          `json:"consultationDate" bson:"consultationDate"`
	Description      string             `json:"consultationDescription" bson:"consultationDescription"`
	Status           ConsultationStatus `json:"consultationStatus" bson:"consultationStatus"`
}
