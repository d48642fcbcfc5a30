package domain

// Provider decision vocabulary. The strings arrive verbatim from the
// journey state and are matched exactly
const (
	decisionPass    = "Pass"
	decisionPassOne = "Pass 1+1"
	decisionPassTwo = "Pass 2+2"
	decisionAlert   = "Alert"
	decisionReject  = "Reject"
	decisionManual  = "Manual review"
)

// MapDecision folds a provider decision string into the internal enum
// anything unrecognized or unfinished stays IN_PROGRESS
func MapDecision(decision string) VerificationStatus {
	switch decision {
	case decisionPass, decisionPassOne, decisionPassTwo:
		return StatusPass
	case decisionAlert, decisionReject:
		return StatusFail
	case decisionManual:
		return StatusManual
	default:
		return StatusInProgress
	}
}

// Resolved reports whether a journey can be finalized from its provider
// status and extracted decision. A journey resolves when the provider has
// closed it, or when a still open journey already carries a manual review
// decision, which is terminal for internal purposes. Any other open journey
// stays unresolved regardless of embedded decision strings
func Resolved(providerStatus, decision string) bool {
	if providerStatus == JourneyCompleted {
		return true
	}
	return providerStatus == JourneyInProgress && decision == decisionManual
}
