package module

import (
	"time"

	"turnstile/internal/platform/config"
)

// Options controls the provider clients behind the compliance module
type Options struct {
	// exclusion registry
	ExclusionAPIURL      string
	ExclusionBatchAPIURL string
	ExclusionAPIKey      string
	ExclusionTimeout     time.Duration
	ExclusionBatchLimit  int

	// identity verification provider
	IdentityBaseURL      string
	IdentityAuthURL      string
	IdentityClientID     string
	IdentityClientSecret string
	IdentityUsername     string
	IdentityPassword     string
	IdentityTimeout      time.Duration
	TokenSafetyBuffer    time.Duration
	IdentityMaxRetries   int
	IdentityRetryBase    time.Duration

	// recheck sweep
	RecheckPause time.Duration
}

// FromConfig reads COMPLIANCE_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	cc := cfg.Prefix("COMPLIANCE_")
	return Options{
		ExclusionAPIURL:      cc.MayString("EXCLUSION_API_URL", ""),
		ExclusionBatchAPIURL: cc.MayString("EXCLUSION_BATCH_API_URL", ""),
		ExclusionAPIKey:      cc.MayString("EXCLUSION_API_KEY", ""),
		ExclusionTimeout:     cc.MayDuration("EXCLUSION_TIMEOUT", 30*time.Second),
		ExclusionBatchLimit:  cc.MayInt("EXCLUSION_BATCH_LIMIT", 1000),

		IdentityBaseURL:      cc.MayString("IDENTITY_BASE_URL", ""),
		IdentityAuthURL:      cc.MayString("IDENTITY_AUTH_URL", ""),
		IdentityClientID:     cc.MayString("IDENTITY_CLIENT_ID", ""),
		IdentityClientSecret: cc.MayString("IDENTITY_CLIENT_SECRET", ""),
		IdentityUsername:     cc.MayString("IDENTITY_USERNAME", ""),
		IdentityPassword:     cc.MayString("IDENTITY_PASSWORD", ""),
		IdentityTimeout:      cc.MayDuration("IDENTITY_TIMEOUT", 30*time.Second),
		TokenSafetyBuffer:    cc.MayDuration("IDENTITY_TOKEN_BUFFER", 300*time.Second),
		IdentityMaxRetries:   cc.MayInt("IDENTITY_MAX_RETRIES", 3),
		IdentityRetryBase:    cc.MayDuration("IDENTITY_RETRY_BASE", 500*time.Millisecond),

		RecheckPause: cc.MayDuration("RECHECK_PAUSE", time.Second),
	}
}
