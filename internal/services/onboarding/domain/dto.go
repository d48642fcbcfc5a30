// Package domain holds DTOs for onboarding http and service contracts
package domain

// AddressInput is the transport shape of a postal address
type AddressInput struct {
	Line1    string `json:"line1"    validate:"required,min=1,max=200" example:"280 Eastern Avenue"`
	Line2    string `json:"line2,omitempty"    validate:"omitempty,max=200"`
	Line3    string `json:"line3,omitempty"    validate:"omitempty,max=200"`
	Town     string `json:"town"     validate:"required,min=1,max=100" example:"Romford"`
	County   string `json:"county,omitempty"   validate:"omitempty,max=100"`
	Postcode string `json:"postcode" validate:"required,uk_postcode" example:"RM2 5TD"`
	Country  string `json:"country"  validate:"required,len=2" example:"GB"`
}

// ScreenInput asks for a single exclusion registry lookup
type ScreenInput struct {
	FirstName   string `json:"first_name"    validate:"required,min=1,max=100" example:"Jane"`
	LastName    string `json:"last_name"     validate:"required,min=1,max=100" example:"Doe"`
	DateOfBirth string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02" example:"1990-04-01"`
	Email       string `json:"email,omitempty"         validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"         validate:"omitempty,e164" example:"+447700900123"`
	Postcode    string `json:"postcode"      validate:"required,uk_postcode" example:"RM2 5TD"`
}

// ScreenOutput reports the registry outcome
type ScreenOutput struct {
	Registered     bool   `json:"registered" example:"false"`
	RegistrationID string `json:"registration_id,omitempty"`
}

// OnboardInput creates a user after the compliance gate
type OnboardInput struct {
	FirstName   string       `json:"first_name"    validate:"required,min=1,max=100" example:"Jane"`
	LastName    string       `json:"last_name"     validate:"required,min=1,max=100" example:"Doe"`
	DateOfBirth string       `json:"date_of_birth" validate:"required,datetime=2006-01-02" example:"1990-04-01"`
	Email       string       `json:"email"         validate:"required,email"`
	Phone       string       `json:"phone"         validate:"required,e164" example:"+447700900123"`
	Address     AddressInput `json:"address"       validate:"required"`
}

// OnboardOutput carries the created record and journey handle
type OnboardOutput struct {
	UserID       string `json:"user_id" example:"743b1f0e-3c1a-43dd-8a32-dcb3f5a61c2e"`
	JourneyID    string `json:"journey_id,omitempty"`
	Verification string `json:"verification" example:"IN_PROGRESS"`
}

// JourneyStatusInput polls the decision for a journey instance
type JourneyStatusInput struct {
	InstanceID string `json:"instance_id" validate:"required,min=1,max=200"`
}

// JourneyStatusOutput is the mapped decision for a journey
type JourneyStatusOutput struct {
	Status   VerificationStatus `json:"status" example:"PASS"`
	Resolved bool               `json:"resolved" example:"true"`
}

// SubmitDocumentsInput attaches document images to the journey's first task
type SubmitDocumentsInput struct {
	UserID    string   `json:"user_id"   validate:"required,uuid"`
	Documents []string `json:"documents" validate:"required,min=1,max=5"`
}

// SubmitDocumentsOutput reports what happened to the upload
// Submitted false with an empty TaskID means there was nothing to submit
type SubmitDocumentsOutput struct {
	Submitted bool   `json:"submitted" example:"true"`
	TaskID    string `json:"task_id,omitempty"`
	Status    string `json:"status,omitempty"`
}
