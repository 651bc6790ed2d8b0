package models

import "time"

type DoctorStatus string

const (
	DoctorStatusPending   DoctorStatus = "pending"
	DoctorStatusActive    DoctorStatus = "active"
	DoctorStatusRejected  DoctorStatus = "rejected"
	DoctorStatusBanned    DoctorStatus = "banned"
	DoctorStatusSuspended DoctorStatus = "suspended"
)

func (s DoctorStatus) IsValid() bool {
	switch s {
	case DoctorStatusPending, DoctorStatusActive, DoctorStatusRejected,
		DoctorStatusBanned, DoctorStatusSuspended:
		return true
	}
	return false
}

// CanLogin is the single login gate for doctor accounts. Every call site
// consults this predicate instead of re-deriving the rule.
func (s DoctorStatus) CanLogin() bool {
	return s == DoctorStatusActive
}

// CanTransitionTo encodes the credentialing state machine:
// pending -> active|rejected, active -> banned|suspended,
// suspended -> active|banned, rejected -> pending. Banned is terminal.
// Activation is additionally allowed from any non-active state because an
// administrator may override a rejection or lift a suspension directly.
func (s DoctorStatus) CanTransitionTo(next DoctorStatus) bool {
	if s == DoctorStatusBanned {
		return false
	}
	if next == DoctorStatusActive {
		return s != DoctorStatusActive
	}
	switch s {
	case DoctorStatusPending:
		return next == DoctorStatusRejected
	case DoctorStatusActive:
		return next == DoctorStatusBanned || next == DoctorStatusSuspended
	case DoctorStatusSuspended:
		return next == DoctorStatusBanned
	case DoctorStatusRejected:
		return next == DoctorStatusPending
	}
	return false
}

type Doctor struct {
	ID              string             `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"doctorName" bson:"doctorName"`
	Email           string             `json:"doctorEmail" bson:"doctorEmail"`
	Password        string             `json:"-" bson:"doctorPassword"`
	Phone           string             `json:"doctorPhone" bson:"doctorPhone"`
	DateOfBirth     string             `json:"doctorDateOfBirth,omitempty" bson:"doctorDateOfBirth,omitempty"`
	Field           string             `json:"field" bson:"field"`
	Image           string             `json:"doctorImage,omitempty" bson:"doctorImage,omitempty"`
	Credentials     DoctorCredentials  `json:"credentials" bson:"credentials"`
	Clinics         []Clinic           `json:"clinic,omitempty" bson:"clinic,omitempty"`
	Status          DoctorStatus       `json:"status" bson:"status"`
	RejectionReason *string            `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	Suspension      *SuspensionDetails `json:"suspensionDetails,omitempty" bson:"suspensionDetails,omitempty"`
	TimeModel       `bson:",inline"`
}

type DoctorCredentials struct {
	NationalID    string   `json:"nationalId" bson:"nationalId"`
	SyndicateID   string   `json:"syndicateId" bson:"syndicateId"`
	SyndicateCard string   `json:"syndicateCard" bson:"syndicateCard"`
	Certificates  []string `json:"certificates" bson:"certificates"`
}

type SuspensionDetails struct {
	Reason       string    `json:"reason" bson:"reason"`
	StartDate    time.Time `json:"startDate" bson:"startDate"`
	DurationDays int       `json:"durationDays" bson:"durationDays"`
	EndDate      time.Time `json:"endDate" bson:"endDate"`
}

// NewSuspensionDetails computes the suspension window. The end date is always
// startDate + durationDays whole days.
func NewSuspensionDetails(reason string, startDate time.Time, durationDays int) *SuspensionDetails {
	return &SuspensionDetails{
		Reason:       reason,
		StartDate:    startDate,
		DurationDays: durationDays,
		EndDate:      startDate.Add(time.Duration(durationDays) * 24 * time.Hour),
	}
}
