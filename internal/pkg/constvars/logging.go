package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingEndpointKey   = "endpoint"
	LoggingMethodKey     = "method"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingDurationKey   = "duration"
	LoggingErrorTypeKey  = "error_type"
	LoggingDoctorIDKey   = "doctor_id"
	LoggingPatientIDKey  = "patient_id"
	LoggingEmailKey      = "email"
	LoggingStatusKey     = "status"
	LoggingIntentKindKey = "intent_kind"
	LoggingStatusCodeKey = "status_code"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingSuccessKey    = "success"
)
