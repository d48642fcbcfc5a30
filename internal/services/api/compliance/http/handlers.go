// Package http provides http transport for compliance
package http

import (
	stdhttp "net/http"

	"turnstile/internal/modkit/httpkit"
	"turnstile/internal/services/onboarding/domain"
	osvc "turnstile/internal/services/onboarding/service"
	rsvc "turnstile/internal/services/recheck/service"
)

// Register mounts the router
func Register(r httpkit.Router, s osvc.Service, sweep rsvc.Service) {
	h := &handlers{svc: s, sweep: sweep}
	httpkit.PostJSON[domain.ScreenInput](r, "/screen", h.screen)
	httpkit.PostJSON[domain.OnboardInput](r, "/onboard", h.onboard)
	httpkit.PostJSON[domain.JourneyStatusInput](r, "/journey/status", h.journeyStatus)
	httpkit.PostJSON[domain.SubmitDocumentsInput](r, "/journey/documents", h.submitDocuments)
	httpkit.Post(r, "/recheck", h.recheck)
}

type handlers struct {
	svc   osvc.Service
	sweep rsvc.Service
}

// swagger:route POST /compliance/screen Compliance screen
// @Summary Screen a person against the self-exclusion registry
// @Tags compliance
// @Accept json
// @Produce json
// @Param payload body domain.ScreenInput true "Screen"
// @Success 200 {object} domain.ScreenOutput "ok"
// @Router /compliance/screen [post]
func (h *handlers) screen(r *stdhttp.Request, in domain.ScreenInput) (any, error) {
	return h.svc.Screen(r.Context(), in)
}

// swagger:route POST /compliance/onboard Compliance onboard
// @Summary Onboard a user behind the compliance gate
// @Tags compliance
// @Accept json
// @Produce json
// @Param payload body domain.OnboardInput true "Onboard"
// @Success 200 {object} domain.OnboardOutput "ok"
// @Failure 403 {object} httpkit.Envelope "registered on the exclusion register"
// @Failure 503 {object} httpkit.Envelope "registry unreachable"
// @Router /compliance/onboard [post]
func (h *handlers) onboard(r *stdhttp.Request, in domain.OnboardInput) (any, error) {
	return h.svc.Onboard(r.Context(), in)
}

// swagger:route POST /compliance/journey/status Compliance journeyStatus
// @Summary Poll and persist a verification journey decision
// @Tags compliance
// @Accept json
// @Produce json
// @Param payload body domain.JourneyStatusInput true "Status"
// @Success 200 {object} domain.JourneyStatusOutput "ok"
// @Failure 404 {object} httpkit.Envelope "unknown journey"
// @Router /compliance/journey/status [post]
func (h *handlers) journeyStatus(r *stdhttp.Request, in domain.JourneyStatusInput) (any, error) {
	return h.svc.JourneyStatus(r.Context(), in)
}

// swagger:route POST /compliance/journey/documents Compliance submitDocuments
// @Summary Attach document images to a journey task
// @Tags compliance
// @Accept json
// @Produce json
// @Param payload body domain.SubmitDocumentsInput true "Documents"
// @Success 200 {object} domain.SubmitDocumentsOutput "ok"
// @Router /compliance/journey/documents [post]
func (h *handlers) submitDocuments(r *stdhttp.Request, in domain.SubmitDocumentsInput) (any, error) {
	return h.svc.SubmitDocuments(r.Context(), in)
}

// swagger:route POST /compliance/recheck Compliance recheck
// @Summary Run a bulk exclusion re-verification sweep
// @Tags compliance
// @Produce json
// @Success 200 {object} service.Report "ok"
// @Router /compliance/recheck [post]
func (h *handlers) recheck(r *stdhttp.Request) (any, error) {
	return h.sweep.Run(r.Context())
}
