package requests

type FamilyHistoryData struct {
	Genetics         []string `json:"genetics" validate:"required"`
	GeneticsDiseases []string `json:"geneticsDiseases" validate:"required"`
}

type CreateMedicalRecord struct {
	Allergies          []string           `json:"allergies" validate:"required"`
	ChronicMedications []string           `json:"chronicMedications" validate:"required"`
	Surgeries          []string           `json:"surgeries" validate:"required"`
	ChronicDiseases    []string           `json:"chronicDiseases" validate:"required"`
	Vaccinations       []string           `json:"vaccinations" validate:"required"`
	BloodType          string             `json:"bloodType" validate:"required,oneof=AB+ A+ B+ O+ AB- A- B- O-"`
	FamilyHistory      *FamilyHistoryData `json:"familyHistory,omitempty"`
}

// UpdateMedicalRecord merges the supplied fields into the stored record;
// nil slices and empty strings leave the stored value untouched.
type UpdateMedicalRecord struct {
	Allergies          []string           `json:"allergies,omitempty"`
	ChronicMedications []string           `json:"chronicMedications,omitempty"`
	Surgeries          []string           `json:"surgeries,omitempty"`
	ChronicDiseases    []string           `json:"chronicDiseases,omitempty"`
	Vaccinations       []string           `json:"vaccinations,omitempty"`
	BloodType          string             `json:"bloodType,omitempty" validate:"omitempty,oneof=AB+ A+ B+ O+ AB- A- B- O-"`
	FamilyHistory      *FamilyHistoryData `json:"familyHistory,omitempty"`
}
