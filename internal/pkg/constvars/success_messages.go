package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	ForgotPasswordSuccess = "OTP already sent to your email"
	VerifyOTPSuccess      = "OTP verified successfully, now you can reset your password"
	ResetPasswordSuccess  = "password already reset successfully"

	// Doctor credentialing messages
	DoctorRegisteredSuccess  = "registration submitted successfully, your account is pending review"
	DoctorActivatedSuccess   = "doctor account activated successfully"
	DoctorRejectedSuccess    = "doctor account rejected successfully"
	DoctorBannedSuccess      = "doctor account banned successfully"
	DoctorSuspendedSuccess   = "doctor account suspended successfully"
	DoctorResubmittedSuccess = "application resubmitted successfully, it will be reviewed shortly"
	DoctorUpdatedSuccess     = "doctor updated successfully"
	DoctorDeletedSuccess     = "doctor account deleted successfully"

	// Clinic messages
	ClinicAddedSuccess   = "clinic added successfully"
	ClinicUpdatedSuccess = "clinic updated successfully"
	ClinicDeletedSuccess = "clinic deleted successfully"

	// Clinical record messages
	EncounterCreatedSuccess    = "diagnosis added successfully"
	PrescriptionCreatedSuccess = "prescription added successfully"
	PrescriptionUpdatedSuccess = "prescription updated successfully"
	PrescriptionDeletedSuccess = "prescription deleted successfully"
	ConsultationUpdatedSuccess = "consultation updated successfully"
	ConsultationDeletedSuccess = "consultation deleted successfully"

	// Medical record messages
	MedicalRecordCreatedSuccess = "medical record created successfully"
	MedicalRecordUpdatedSuccess = "medical record updated successfully"
	MedicalRecordDeletedSuccess = "medical record deleted successfully"

	// Patient messages
	PatientRegisteredSuccess = "patient registered successfully"
)
