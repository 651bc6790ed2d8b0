package models

import (
	"fmt"
	"regexp"

	"bimar-service/internal/pkg/constvars"
)

// Clinic is the capacity/schedule descriptor embedded in a doctor record.
// It has no identity outside its owning doctor. An external booking engine
// consumes WorkDays; this service only guarantees structural validity on
// every write.
type Clinic struct {
	ClinicID      string    `json:"clinicId" bson:"clinicId"`
	Name          string    `json:"clinicName" bson:"clinicName"`
	License       string    `json:"clinicLicense,omitempty" bson:"clinicLicense,omitempty"`
	City          string    `json:"clinicCity" bson:"clinicCity"`
	Area          string    `json:"clinicArea" bson:"clinicArea"`
	Address       string    `json:"clinicAddress" bson:"clinicAddress"`
	Phones        []string  `json:"clinicPhone" bson:"clinicPhone"`
	Email         string    `json:"clinicEmail" bson:"clinicEmail"`
	Website       string    `json:"clinicWebsite,omitempty" bson:"clinicWebsite,omitempty"`
	WorkDays      []WorkDay `json:"clinicWorkDays" bson:"clinicWorkDays"`
	LocationLinks string    `json:"clinicLocationLinks" bson:"clinicLocationLinks"`
	Price         float64   `json:"price" bson:"price"`
}

type WorkDay struct {
	Day          string   `json:"day" bson:"day"`
	WorkingHours []string `json:"workingHours" bson:"workingHours"`
	MaxBookings  int      `json:"maxBookings" bson:"maxBookings"`
}

var validWeekDays = map[string]bool{
	"Sunday":    true,
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
}

var timeWindowRegex = regexp.MustCompile(constvars.RegexTimeWindowHHMM)

// ValidateWorkDays checks the structural invariants the booking engine relies
// on: at least one day, recognized weekday names, non-empty HH:MM-HH:MM
// windows, and a non-negative booking cap.
func ValidateWorkDays(workDays []WorkDay) error {
	if len(workDays) == 0 {
		return fmt.Errorf("clinicWorkDays must contain at least one working day")
	}
	for _, workDay := range workDays {
		if !validWeekDays[workDay.Day] {
			return fmt.Errorf("invalid day: %q", workDay.Day)
		}
		if len(workDay.WorkingHours) == 0 {
			return fmt.Errorf("working hours are required for %s", workDay.Day)
		}
		for _, window := range workDay.WorkingHours {
			if !timeWindowRegex.MatchString(window) {
				return fmt.Errorf("invalid working hours window %q for %s", window, workDay.Day)
			}
		}
		if workDay.MaxBookings < 0 {
			return fmt.Errorf("maxBookings must be non-negative for %s", workDay.Day)
		}
	}
	return nil
}
