package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type Login struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type RegisterDoctor struct {
	DoctorID string `json:"doctorId"`
	Status   string `json:"status"`
}

type RegisterPatient struct {
	PatientID string `json:"patientId"`
}

type CreateEncounter struct {
	EncounterID string `json:"encounterId"`
	FollowUp    bool   `json:"followUp"`
}

type CreatePrescriptionEncounter struct {
	EncounterID    string `json:"encounterId"`
	PrescriptionID string `json:"prescriptionId"`
}
