package utils

import (
	"regexp"

	"bimar-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("time_window", validateTimeWindow)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	return re.MatchString(phoneNumber)
}

// validateTimeWindow accepts "HH:MM-HH:MM" clinic opening windows.
func validateTimeWindow(fl validator.FieldLevel) bool {
	window := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexTimeWindowHHMM)
	return re.MatchString(window)
}
