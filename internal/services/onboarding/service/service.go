// Package service contains the onboarding compliance workflows
package service

import (
	"context"
	"errors"
	"time"

	"turnstile/internal/adapters/exclusion"
	"turnstile/internal/adapters/identity"
	"turnstile/internal/modkit/repokit"
	perr "turnstile/internal/platform/errors"
	"turnstile/internal/platform/logger"
	"turnstile/internal/services/onboarding/domain"
	"turnstile/internal/services/onboarding/repo"

	"github.com/google/uuid"
)

// tokenAttempts bounds the document upload token loop
const tokenAttempts = 3

// Service is the public service port
type Service interface{ domain.ServicePort }

// Svc implements the service port
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	repo   repo.Repo

	excl   domain.ExclusionPort
	ident  domain.IdentityPort
	tokens domain.TokenPort

	log logger.Logger
}

// Options control service wiring
type Options struct {
	Exclusion domain.ExclusionPort
	Identity  domain.IdentityPort
	Tokens    domain.TokenPort
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("onboarding.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("onboarding.Service requires a non nil Repo binder")
	}
	if opt.Exclusion == nil {
		panic("onboarding.Service requires a non nil ExclusionPort")
	}
	if opt.Identity == nil {
		panic("onboarding.Service requires a non nil IdentityPort")
	}
	if opt.Tokens == nil {
		panic("onboarding.Service requires a non nil TokenPort")
	}
	return &Svc{
		db:     db,
		binder: binder,
		repo:   binder.Bind(db),
		excl:   opt.Exclusion,
		ident:  opt.Identity,
		tokens: opt.Tokens,
		log:    *logger.Named("onboarding"),
	}
}

// Screen runs a single registry lookup for an arbitrary person
// a provider failure is surfaced as-is, the caller decides policy
func (s *Svc) Screen(ctx context.Context, in domain.ScreenInput) (domain.ScreenOutput, error) {
	res, err := s.excl.CheckOne(ctx, exclusion.Person{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: in.DateOfBirth,
		Email:       in.Email,
		Mobile:      in.Phone,
		Postcode:    in.Postcode,
	})
	if err != nil {
		return domain.ScreenOutput{}, perr.WithDetail(err, perr.ProviderDetail(err))
	}
	return domain.ScreenOutput{
		Registered:     res.Registered,
		RegistrationID: res.RegistrationID,
	}, nil
}

// Onboard creates a user behind the compliance gate
//
// The exclusion check is fail-safe-deny: a registered match or an
// unreachable registry both block account creation. Journey start is
// best-effort, its failure leaves the record without a journey handle
// and verification is resumed later
func (s *Svc) Onboard(ctx context.Context, in domain.OnboardInput) (domain.OnboardOutput, error) {
	check, err := s.excl.CheckOne(ctx, exclusion.Person{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: in.DateOfBirth,
		Email:       in.Email,
		Mobile:      in.Phone,
		Postcode:    in.Address.Postcode,
	})
	if err != nil {
		// the accuracy of the no-self-exclusion guarantee is the reason
		// the check exists, so an incomplete check denies creation
		return domain.OnboardOutput{}, perr.Wrapf(
			perr.WithDetail(err, perr.ProviderDetail(err)),
			perr.ErrorCodeUnavailable,
			"exclusion check could not be completed",
		)
	}
	if check.Registered {
		return domain.OnboardOutput{}, perr.Forbiddenf("person is on the self-exclusion register")
	}

	now := time.Now()
	u := domain.User{
		ID:          uuid.New(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: in.DateOfBirth,
		Email:       in.Email,
		Phone:       in.Phone,
		Address: &domain.Address{
			Line1:    in.Address.Line1,
			Line2:    in.Address.Line2,
			Line3:    in.Address.Line3,
			Town:     in.Address.Town,
			County:   in.Address.County,
			Postcode: in.Address.Postcode,
			Country:  in.Address.Country,
		},
		IsSelfExcluded:     false,
		ExclusionRequestID: check.RegistrationID,
		ExclusionCheckedAt: &now,
	}

	journeyID, err := s.ident.Start(ctx, identityPerson(u), u.ID.String())
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", u.ID.String()).Msg("journey start failed, onboarding continues")
	} else {
		u.KYCInstanceID = &journeyID
	}

	if err := s.repo.InsertUser(ctx, u); err != nil {
		return domain.OnboardOutput{}, perr.Wrapf(err, perr.ErrorCodeDB, "insert user failed")
	}

	return domain.OnboardOutput{
		UserID:       u.ID.String(),
		JourneyID:    journeyID,
		Verification: string(domain.StatusInProgress),
	}, nil
}

// JourneyStatus polls the journey state, maps the decision, and persists
// the outcome on the owning user when the journey resolves
func (s *Svc) JourneyStatus(ctx context.Context, in domain.JourneyStatusInput) (domain.JourneyStatusOutput, error) {
	u, err := s.repo.UserByJourneyID(ctx, in.InstanceID)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return domain.JourneyStatusOutput{}, perr.NotFoundf("no user for journey %s", in.InstanceID)
		}
		return domain.JourneyStatusOutput{}, perr.Wrapf(err, perr.ErrorCodeDB, "user lookup failed")
	}

	tok, err := s.tokens.Get(ctx)
	if err != nil {
		return domain.JourneyStatusOutput{}, perr.WithDetail(err, perr.ProviderDetail(err))
	}

	state, err := s.ident.FetchState(ctx, in.InstanceID, tok.AccessToken)
	if err != nil {
		return domain.JourneyStatusOutput{}, perr.WithDetail(err, perr.ProviderDetail(err))
	}

	status := domain.MapDecision(state.Decision)
	resolved := domain.Resolved(state.Status, state.Decision)
	if !resolved {
		return domain.JourneyStatusOutput{Status: domain.StatusInProgress, Resolved: false}, nil
	}

	verified := status == domain.StatusPass
	if err := s.repo.UpdateJourneyOutcome(ctx, u.ID, true, verified); err != nil {
		return domain.JourneyStatusOutput{}, perr.Wrapf(err, perr.ErrorCodeDB, "journey outcome update failed")
	}

	s.log.Info().
		Str("user_id", u.ID.String()).
		Str("instance_id", in.InstanceID).
		Str("status", string(status)).
		Msg("journey resolved")

	return domain.JourneyStatusOutput{Status: status, Resolved: true}, nil
}

// SubmitDocuments fetches the journey's outstanding tasks and completes the
// first one with the supplied document images
//
// Token acquisition loops up to three attempts, exhaustion surfaces as a
// service unavailable outcome rather than a raw auth error. An empty task
// list is a valid terminal state meaning nothing to submit
func (s *Svc) SubmitDocuments(ctx context.Context, in domain.SubmitDocumentsInput) (domain.SubmitDocumentsOutput, error) {
	uid, err := uuid.Parse(in.UserID)
	if err != nil {
		return domain.SubmitDocumentsOutput{}, perr.Validationf("user_id is not a valid uuid")
	}
	u, err := s.repo.UserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return domain.SubmitDocumentsOutput{}, perr.NotFoundf("user %s not found", in.UserID)
		}
		return domain.SubmitDocumentsOutput{}, perr.Wrapf(err, perr.ErrorCodeDB, "user lookup failed")
	}
	if u.KYCInstanceID == nil {
		return domain.SubmitDocumentsOutput{}, perr.Validationf("user has no verification journey")
	}

	var tok identity.AuthToken
	ok := false
	for i := 0; i < tokenAttempts; i++ {
		t, err := s.tokens.Get(ctx)
		if err == nil {
			tok, ok = t, true
			break
		}
		s.log.Warn().Err(err).Int("attempt", i+1).Msg("token acquisition failed during document upload")
	}
	if !ok {
		return domain.SubmitDocumentsOutput{}, perr.Unavailablef("service unavailable")
	}

	tasks, err := s.ident.RetrieveTasks(ctx, *u.KYCInstanceID, tok.AccessToken)
	if err != nil {
		return domain.SubmitDocumentsOutput{}, perr.WithDetail(err, perr.ProviderDetail(err))
	}
	if len(tasks) == 0 {
		return domain.SubmitDocumentsOutput{Submitted: false}, nil
	}

	task := tasks[0]
	res, err := s.ident.SubmitDocuments(
		ctx, *u.KYCInstanceID, task.TaskID,
		u.FirstName, u.LastName, in.Documents, tok.AccessToken,
	)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeValidation) {
			return domain.SubmitDocumentsOutput{}, err
		}
		return domain.SubmitDocumentsOutput{}, perr.WithDetail(err, perr.ProviderDetail(err))
	}

	return domain.SubmitDocumentsOutput{
		Submitted: true,
		TaskID:    task.TaskID,
		Status:    res.Status,
	}, nil
}

// identityPerson projects a stored user into the provider's person shape
func identityPerson(u domain.User) identity.Person {
	p := identity.Person{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DateOfBirth: u.DateOfBirth,
		Email:       u.Email,
		Phone:       u.Phone,
	}
	if a := u.Address; a != nil {
		p.Address = &identity.Address{
			Line1:    a.Line1,
			Line2:    a.Line2,
			Line3:    a.Line3,
			Town:     a.Town,
			County:   a.County,
			Postcode: a.Postcode,
			Country:  a.Country,
		}
	}
	return p
}
