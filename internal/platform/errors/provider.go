package errors

// Provider error classification. Compliance providers surface failures as
// non-2xx statuses or transport errors; handlers present them to callers as a
// stable sub-code plus the original message, never a stack trace.

import "strings"

// ProviderCode is the presentation sub-code for an upstream provider failure
type ProviderCode string

const (
	// ProviderAuthFailed means the provider rejected our credentials or token
	ProviderAuthFailed ProviderCode = "AUTH_FAILED"

	// ProviderForbidden means the provider denied access to the resource
	ProviderForbidden ProviderCode = "FORBIDDEN"

	// ProviderRateLimit means the provider throttled us (HTTP 429)
	ProviderRateLimit ProviderCode = "RATE_LIMIT"

	// ProviderServiceError means the provider failed server-side (5xx)
	ProviderServiceError ProviderCode = "SERVICE_ERROR"

	// ProviderTimeout means the call exceeded its deadline
	ProviderTimeout ProviderCode = "TIMEOUT"

	// ProviderValidation means the provider rejected the request shape (400/422)
	ProviderValidation ProviderCode = "VALIDATION_ERROR"

	// ProviderUnknown is the fallback for anything unclassified
	ProviderUnknown ProviderCode = "UNKNOWN_ERROR"
)

// ClassifyProvider inspects an error's message for status codes and keywords
// and returns the presentation sub-code. Classification is lexical on purpose:
// provider SDK-less HTTP clients only carry the status in the message
func ClassifyProvider(err error) ProviderCode {
	if err == nil {
		return ProviderUnknown
	}
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return ProviderTimeout
	case strings.Contains(msg, "status 401"), strings.Contains(msg, "unauthorized"), strings.Contains(msg, "invalid_grant"):
		return ProviderAuthFailed
	case strings.Contains(msg, "status 403"), strings.Contains(msg, "forbidden"):
		return ProviderForbidden
	case strings.Contains(msg, "status 429"), strings.Contains(msg, "too many requests"), strings.Contains(msg, "rate limit"):
		return ProviderRateLimit
	case strings.Contains(msg, "status 400"), strings.Contains(msg, "status 422"):
		return ProviderValidation
	case strings.Contains(msg, "status 5"), strings.Contains(msg, "bad gateway"), strings.Contains(msg, "service unavailable"):
		return ProviderServiceError
	default:
		return ProviderUnknown
	}
}

// ProviderDetail renders the classified form used in response `details` fields
func ProviderDetail(err error) string {
	if err == nil {
		return ""
	}
	return string(ClassifyProvider(err)) + ": " + Root(err).Error()
}
