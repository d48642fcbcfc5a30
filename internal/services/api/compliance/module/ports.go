package module

import (
	"context"

	"turnstile/internal/services/onboarding/domain"
	osvc "turnstile/internal/services/onboarding/service"
	rsvc "turnstile/internal/services/recheck/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptCompliancePort exposes service methods as module ports for cross-module usage
type adaptCompliancePort struct {
	svc   osvc.Service
	sweep rsvc.Service
}

func (a adaptCompliancePort) Screen(ctx context.Context, in domain.ScreenInput) (domain.ScreenOutput, error) {
	return a.svc.Screen(ctx, in)
}

func (a adaptCompliancePort) Onboard(ctx context.Context, in domain.OnboardInput) (domain.OnboardOutput, error) {
	return a.svc.Onboard(ctx, in)
}

func (a adaptCompliancePort) JourneyStatus(ctx context.Context, in domain.JourneyStatusInput) (domain.JourneyStatusOutput, error) {
	return a.svc.JourneyStatus(ctx, in)
}

func (a adaptCompliancePort) SubmitDocuments(ctx context.Context, in domain.SubmitDocumentsInput) (domain.SubmitDocumentsOutput, error) {
	return a.svc.SubmitDocuments(ctx, in)
}

func (a adaptCompliancePort) Recheck(ctx context.Context) (rsvc.Report, error) {
	return a.sweep.Run(ctx)
}
