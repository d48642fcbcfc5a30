package identity

import "time"

// Address is the structured postal address the provider consumes
// Line1, Town, Postcode and Country are mandatory
type Address struct {
	Line1    string
	Line2    string
	Line3    string
	Town     string
	County   string
	Postcode string
	Country  string
}

// Person is the identity projection one verification call works on
type Person struct {
	FirstName   string
	LastName    string
	DateOfBirth string
	Email       string
	Phone       string
	Address     *Address
}

// AuthToken is an ephemeral bearer token, owned by TokenSource
type AuthToken struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int
	IssuedAt    time.Time
}

// ExpiresAt reports the instant the token stops being valid
func (t AuthToken) ExpiresAt() time.Time {
	return t.IssuedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// Task is one outstanding unit of work inside a journey
type Task struct {
	TaskID    string `json:"taskId"`
	VariantID string `json:"variantId"`
}

// JourneyState is the raw polled state of a journey
// Decision is empty while the provider has not surfaced one
type JourneyState struct {
	Status   string
	Decision string
}

// SubmitResult reports the provider's response to a task update
type SubmitResult struct {
	Status     string
	InstanceID string
}

// wire shapes

type tokenWire struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type startWire struct {
	InstanceID string `json:"instanceId"`
	Status     string `json:"status,omitempty"`
}

type taskListWire struct {
	Status     string `json:"status"`
	InstanceID string `json:"instanceId"`
	Tasks      []Task `json:"tasks"`
}

type taskUpdateWire struct {
	Status     string `json:"status"`
	InstanceID string `json:"instanceId"`
}

// stateWire mirrors the nested flow/outcome structure of state/fetch
type stateWire struct {
	Status  string `json:"status"`
	Context *struct {
		Flow []struct {
			Step    string `json:"step"`
			Outcome string `json:"outcome"`
		} `json:"flow"`
	} `json:"context"`
}
