package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
)

const (
	REQUEST_ID_PREFIX = "BIMAR_SVC_"
)

const (
	MongoCollectionPatients = "patients"
	MongoCollectionDoctors  = "doctors"
	MongoCollectionAdmins   = "admins"
)

const (
	BimarRoleAdmin   = "Admin"
	BimarRoleDoctor  = "Doctor"
	BimarRolePatient = "Patient"
)

const (
	URLParamDoctorID       = "doctor_id"
	URLParamPatientID      = "patient_id"
	URLParamClinicID       = "clinic_id"
	URLParamPrescriptionID = "prescription_id"
	URLParamConsultationID = "consultation_id"
)

const (
	URLQueryParamFollowUp = "followup"
	URLQueryParamField    = "field"
)

const (
	MultipartFieldXray          = "xray"
	MultipartFieldLabResults    = "labResults"
	MultipartFieldSyndicateCard = "syndicateCard"
	MultipartFieldCertificates  = "certificates"
	MultipartFieldClinicLicense = "clinicLicense"
)
