package constvars

// Notification intent kinds. The mailer worker maps each kind to a template.
const (
	NotificationKindDoctorRegistered = "doctor_registered"
	NotificationKindDoctorActivated  = "doctor_activated"
	NotificationKindDoctorRejected   = "doctor_rejected"
	NotificationKindDoctorBanned     = "doctor_banned"
	NotificationKindDoctorSuspended  = "doctor_suspended"
	NotificationKindPasswordResetOTP = "password_reset_otp"
)

const (
	EmailSubjectDoctorRegistered = "Welcome to Bimar - Registration Under Review"
	EmailSubjectDoctorActivated  = "Welcome to Bimar - Account Activated"
	EmailSubjectDoctorRejected   = "Bimar Account Status Update"
	EmailSubjectDoctorBanned     = "Bimar Account Banned"
	EmailSubjectDoctorSuspended  = "Bimar Account Suspended"
	EmailSubjectPasswordResetOTP = "Password Reset OTP"
)

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
)
