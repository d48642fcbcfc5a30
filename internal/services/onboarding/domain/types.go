// Package domain holds onboarding core types independent of transport or storage
package domain

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus is the internal decision enum for a journey
type VerificationStatus string

const (
	// StatusPass means the provider verified the identity
	StatusPass VerificationStatus = "PASS"

	// StatusFail means the provider rejected the identity
	StatusFail VerificationStatus = "FAIL"

	// StatusManual means a human has to review the journey
	StatusManual VerificationStatus = "MANUAL"

	// StatusInProgress is the only non-terminal state, callers poll again later
	StatusInProgress VerificationStatus = "IN_PROGRESS"
)

// Terminal reports whether the status requires no further polling
func (s VerificationStatus) Terminal() bool { return s != StatusInProgress }

// Provider journey statuses as the external service reports them
const (
	JourneyCompleted  = "Completed"
	JourneyInProgress = "InProgress"
)

// Address is a structured postal address
// Line1, Town, Postcode and Country are mandatory for provider calls
type Address struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	Town     string `json:"town"`
	County   string `json:"county,omitempty"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// User is the persisted onboarding record with its compliance fields
type User struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	DateOfBirth string
	Email       string
	Phone       string
	Address     *Address

	IsSelfExcluded     bool
	ExclusionRequestID string
	ExclusionCheckedAt *time.Time

	KYCInstanceID      *string
	KYCCompleted       bool
	IsIdentityVerified bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
