package requests

type WorkDay struct {
	Day          string   `json:"day" validate:"required,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	WorkingHours []string `json:"workingHours" validate:"required,min=1,dive,time_window"`
	MaxBookings  int      `json:"maxBookings" validate:"gte=0"`
}

type AddClinic struct {
	Name          string    `json:"clinicName"`
	City          string    `json:"clinicCity" validate:"required"`
	Area          string    `json:"clinicArea" validate:"required"`
	Address       string    `json:"clinicAddress" validate:"required"`
	Phones        []string  `json:"clinicPhone" validate:"required,min=1"`
	Email         string    `json:"clinicEmail" validate:"required,email"`
	Website       string    `json:"clinicWebsite"`
	WorkDays      []WorkDay `json:"clinicWorkDays" validate:"required,min=1,dive"`
	LocationLinks string    `json:"clinicLocationLinks" validate:"required"`
	Price         float64   `json:"price" validate:"required,gt=0"`

	LicensePath string `json:"-"`
}

type UpdateClinic struct {
	DoctorEmail   string    `json:"doctorEmail" validate:"required,email"`
	ClinicID      string    `json:"clinicId" validate:"required"`
	Name          *string   `json:"clinicName,omitempty"`
	City          *string   `json:"clinicCity,omitempty"`
	Area          *string   `json:"clinicArea,omitempty"`
	Address       *string   `json:"clinicAddress,omitempty"`
	Phones        []string  `json:"clinicPhone,omitempty"`
	Email         *string   `json:"clinicEmail,omitempty" validate:"omitempty,email"`
	Website       *string   `json:"clinicWebsite,omitempty"`
	WorkDays      []WorkDay `json:"clinicWorkDays,omitempty" validate:"omitempty,min=1,dive"`
	LocationLinks *string   `json:"clinicLocationLinks,omitempty"`
	Price         *float64  `json:"price,omitempty" validate:"omitempty,gt=0"`
}

type DeleteClinic struct {
	DoctorEmail string `json:"doctorEmail" validate:"required,email"`
	ClinicID    string `json:"clinicId" validate:"required"`
}
