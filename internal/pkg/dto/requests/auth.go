package requests

type LoginDoctor struct {
	Email    string `json:"doctorEmail" validate:"required,email"`
	Password string `json:"doctorPassword" validate:"required"`
}

type RegisterDoctor struct {
	Name        string `json:"doctorName" validate:"required"`
	Email       string `json:"doctorEmail" validate:"required,email"`
	Password    string `json:"doctorPassword" validate:"required,password"`
	Phone       string `json:"doctorPhone" validate:"required,phone_number"`
	DateOfBirth string `json:"doctorDateOfBirth"`
	Field       string `json:"field" validate:"required"`
	NationalID  string `json:"nationalId" validate:"required"`
	SyndicateID string `json:"syndicateId" validate:"required"`

	// Resolved to stored object paths by the upload collaborator before the
	// usecase runs; never raw file bytes.
	SyndicateCardPath string   `json:"-"`
	CertificatePaths  []string `json:"-"`
}

type ForgotPassword struct {
	Email string `json:"doctorEmail" validate:"required,email"`
}

type VerifyOTP struct {
	Email string `json:"doctorEmail" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

type ResetPassword struct {
	Email       string `json:"doctorEmail" validate:"required,email"`
	OTP         string `json:"otp" validate:"omitempty,numeric"`
	NewPassword string `json:"newPassword" validate:"required,password"`
}

type RegisterPatient struct {
	Name           string `json:"userName" validate:"required"`
	Phone          string `json:"userPhone" validate:"required,phone_number"`
	Email          string `json:"userEmail" validate:"required,email"`
	Password       string `json:"userPassword" validate:"required,password"`
	RetypePassword string `json:"retypePassword" validate:"required"`
}

type LoginPatient struct {
	Email    string `json:"userEmail" validate:"required,email"`
	Password string `json:"userPassword" validate:"required"`
}

type RegisterAdmin struct {
	Name     string `json:"adminName" validate:"required"`
	Email    string `json:"adminEmail" validate:"required,email"`
	Password string `json:"adminPassword" validate:"required,password"`
}
