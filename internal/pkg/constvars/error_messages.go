package constvars

// Validation messages for request DTOs, keyed by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gt":       "must be greater than %s",
	"gte":      "must be at least %s",
	"oneof":    "must be one of: %s",
	"dive":     "has an invalid element",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"weekday":  "must be a valid weekday name",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"

	ErrClientDoctorNotFound         = "doctor not found"
	ErrClientPatientNotFound        = "patient not found"
	ErrClientEncounterNotFound      = "encounter not found"
	ErrClientPrescriptionNotFound   = "prescription not found"
	ErrClientConsultationNotFound   = "consultation not found"
	ErrClientClinicNotFound         = "clinic not found or no changes made"
	ErrClientAccountNotActiveFormat = "your account is currently %s, please contact support for more information"
	ErrClientApplicationNotEditable = "this application cannot be edited at this time"
	ErrClientSuspensionFieldsNeeded = "suspension reason and a positive duration are required"
	ErrClientInvalidWorkDay         = "clinic work days are invalid"
	ErrClientOTPExpired             = "OTP has expired or does not exist"
	ErrClientOTPInvalid             = "incorrect OTP, please try again"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevAccountNotActive         = "doctor account status blocks login"
	ErrDevMissingRequestID         = "request ID missing from context"
	ErrDevMissingSessionData       = "session data missing from context"
	ErrDevAuthTokenMissing         = "authorization token is missing"
	ErrDevAuthTokenInvalid         = "authorization token is invalid"
	ErrDevAuthGenerateToken        = "failed to generate token"
	ErrDevAuthSigningMethod        = "unexpected token signing method"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"

	ErrDevDoctorNotFound           = "doctor document not found"
	ErrDevPatientNotFound          = "patient document not found"
	ErrDevEncounterNotFound        = "no encounter matched the given id"
	ErrDevPrescriptionNotMatched   = "no encounter matched the prescription id"
	ErrDevConsultationNotMatched   = "no encounter matched the consultation id"
	ErrDevClinicNotMatched         = "no clinic matched the given id"
	ErrDevDoctorNotRejected        = "doctor status is not rejected"
	ErrDevSuspensionInvalidArgs    = "suspension requires a reason and a positive duration in days"
	ErrDevInvalidStatusTransition  = "status transition is not allowed"
	ErrDevWorkDayDescriptorInvalid = "work day descriptor failed structural validation"

	ErrDevDBFailedToFindDocument    = "failed to find document"
	ErrDevDBFailedToInsertDocument  = "failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "failed to update document"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents"
	ErrDevDBStringNotObjectID       = "string is not a valid object ID"

	ErrDevRedisSet         = "failed to set value to redis"
	ErrDevRedisGet         = "failed to get value from redis, key: %s"
	ErrDevRedisDelete      = "failed to delete value from redis"
	ErrDevRedisSessionGone = "session not found in redis"

	ErrDevMailerPublish             = "failed to publish notification intent"
	ErrDevSMTPSendEmail             = "failed to send email via smtp host: %s"
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket: %s"
)
