package requests

type RejectDoctor struct {
	// DoctorID comes from the URL path, never from the body.
	DoctorID        string `json:"-"`
	RejectionReason string `json:"rejectionReason" validate:"required"`
}

type SuspendDoctor struct {
	DoctorID           string `json:"-"`
	SuspensionReason   string `json:"suspensionReason" validate:"required"`
	SuspensionDuration int    `json:"suspensionDuration" validate:"required,gt=0"`
}

// ResubmitDoctor deliberately has no status or rejection-reason fields: any
// such keys in the payload are dropped during decoding, so a caller can never
// smuggle a status change through resubmission.
type ResubmitDoctor struct {
	Name        *string `json:"doctorName,omitempty"`
	Phone       *string `json:"doctorPhone,omitempty" validate:"omitempty,phone_number"`
	DateOfBirth *string `json:"doctorDateOfBirth,omitempty"`
	Field       *string `json:"field,omitempty"`
	NationalID  *string `json:"nationalId,omitempty"`
	SyndicateID *string `json:"syndicateId,omitempty"`

	SyndicateCardPath string   `json:"-"`
	CertificatePaths  []string `json:"-"`
}

type UpdateDoctor struct {
	Email       string  `json:"email" validate:"required,email"`
	Name        *string `json:"doctorName,omitempty"`
	Phone       *string `json:"doctorPhone,omitempty" validate:"omitempty,phone_number"`
	DateOfBirth *string `json:"doctorDateOfBirth,omitempty"`
	NewEmail    *string `json:"doctorEmail,omitempty" validate:"omitempty,email"`
}

type DeleteDoctor struct {
	Email string `json:"email" validate:"required,email"`
}
