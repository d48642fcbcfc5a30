package exclusion

// Person carries the identity fields the registry matches on
// DateOfBirth is an ISO date string, Mobile and Email may be empty for single checks
type Person struct {
	FirstName   string
	LastName    string
	DateOfBirth string
	Email       string
	Mobile      string
	Postcode    string
}

// CheckResult is the outcome of a single registry lookup
// Registered is true only when the provider flag equals the literal "Y"
type CheckResult struct {
	Registered     bool
	RegistrationID string
}

// BatchUser is one entry of a batch lookup, keyed by CorrelationID
type BatchUser struct {
	CorrelationID string
	Person
}

// BatchResult is one correlated entry of a batch response
// Registered is true when the provider flag is "Y" or "P" (partial match),
// which is stricter than the single check path on purpose
type BatchResult struct {
	CorrelationID     string
	Registered        bool
	ProviderRequestID string
}

// batchItem is the wire shape of one batch request entry
type batchItem struct {
	CorrelationID string `json:"correlationId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	Email         string `json:"email,omitempty"`
	Mobile        string `json:"mobile,omitempty"`
	Postcode      string `json:"postcode"`
}

// batchItemResult is the wire shape of one batch response entry
type batchItemResult struct {
	CorrelationID string `json:"correlationId"`
	Exclusion     string `json:"exclusion"`
	MSRequestID   string `json:"msRequestId"`
}
