package domain

import (
	"context"

	"turnstile/internal/adapters/exclusion"
	"turnstile/internal/adapters/identity"
)

// ServicePort is the interface implemented by the onboarding service
type ServicePort interface {
	Screen(ctx context.Context, in ScreenInput) (ScreenOutput, error)
	Onboard(ctx context.Context, in OnboardInput) (OnboardOutput, error)
	JourneyStatus(ctx context.Context, in JourneyStatusInput) (JourneyStatusOutput, error)
	SubmitDocuments(ctx context.Context, in SubmitDocumentsInput) (SubmitDocumentsOutput, error)
}

// ExclusionPort is the registry contract the service consumes
// it is deliberately transport free so tests can fake it
type ExclusionPort interface {
	CheckOne(ctx context.Context, p exclusion.Person) (exclusion.CheckResult, error)
	CheckBatch(ctx context.Context, users []exclusion.BatchUser) ([]exclusion.BatchResult, error)
	BatchLimit() int
}

// IdentityPort is the verification journey contract the service consumes
type IdentityPort interface {
	Start(ctx context.Context, p identity.Person, resourceID string) (string, error)
	FetchState(ctx context.Context, instanceID, token string) (identity.JourneyState, error)
	RetrieveTasks(ctx context.Context, instanceID, token string) ([]identity.Task, error)
	SubmitDocuments(
		ctx context.Context,
		instanceID, taskID, firstName, lastName string,
		documents []string,
		token string,
	) (identity.SubmitResult, error)
}

// TokenPort mints and caches provider bearer tokens
type TokenPort interface {
	Fresh(ctx context.Context) (identity.AuthToken, error)
	Get(ctx context.Context) (identity.AuthToken, error)
}
