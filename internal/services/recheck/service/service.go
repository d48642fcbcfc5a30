// Package service runs the periodic bulk exclusion re-verification sweep
package service

import (
	"context"
	"time"

	"turnstile/internal/adapters/exclusion"
	"turnstile/internal/modkit/repokit"
	"turnstile/internal/platform/logger"
	"turnstile/internal/platform/store"
	"turnstile/internal/services/onboarding/domain"
	"turnstile/internal/services/onboarding/repo"
)

// eventsTable receives exclusion status transitions, columns listed inline
// so the seam's plain INSERT stays self describing
const eventsTable = "compliance_exclusion_events (user_id, was_excluded, is_excluded, provider_request_id, occurred_at)"

// defaultChunkPause spaces consecutive provider batches apart
const defaultChunkPause = time.Second

// Report summarises a single sweep
type Report struct {
	TotalUsers int           `json:"total_users"`
	Batches    int           `json:"batches"`
	Updated    int           `json:"updated"`
	Unchanged  int           `json:"unchanged"`
	Errors     int           `json:"errors"`
	Duration   time.Duration `json:"duration"`
}

// Service is the public recheck port
type Service interface {
	Run(ctx context.Context) (Report, error)
}

// Svc implements the sweep
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	repo   repo.Repo

	excl domain.ExclusionPort
	ch   store.Clickhouse

	// pause runs between consecutive chunks, overridable in tests
	pause func(ctx context.Context) error

	log logger.Logger
}

// Options control sweep wiring, CH may be nil to disable event archival
type Options struct {
	Exclusion domain.ExclusionPort
	CH        store.Clickhouse
	Pause     func(ctx context.Context) error
}

// New constructs the sweep service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("recheck.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("recheck.Service requires a non nil Repo binder")
	}
	if opt.Exclusion == nil {
		panic("recheck.Service requires a non nil ExclusionPort")
	}
	pause := opt.Pause
	if pause == nil {
		pause = sleepPause(defaultChunkPause)
	}
	return &Svc{
		db:     db,
		binder: binder,
		repo:   binder.Bind(db),
		excl:   opt.Exclusion,
		ch:     opt.CH,
		pause:  pause,
		log:    *logger.Named("recheck"),
	}
}

// sleepPause waits d or returns early when the context ends
func sleepPause(d time.Duration) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	}
}

// Run sweeps every eligible user through the exclusion registry in
// strictly sequential chunks
//
// A chunk-level provider failure counts every user in the chunk as an
// error and the sweep continues with the next chunk. Per-user persistence
// failures are counted, never fatal. An empty eligible set returns a zero
// report without touching the provider
func (s *Svc) Run(ctx context.Context) (Report, error) {
	start := time.Now()

	candidates, err := s.repo.RecheckCandidates(ctx)
	if err != nil {
		return Report{}, err
	}
	eligible := filterEligible(candidates)

	rep := Report{TotalUsers: len(eligible)}
	if len(eligible) == 0 {
		rep.Duration = time.Since(start)
		return rep, nil
	}

	chunks := chunkUsers(eligible, s.excl.BatchLimit())
	rep.Batches = len(chunks)

	for i, chunk := range chunks {
		s.runChunk(ctx, chunk, &rep)

		if i < len(chunks)-1 {
			if err := s.pause(ctx); err != nil {
				rep.Duration = time.Since(start)
				return rep, err
			}
		}
	}

	rep.Duration = time.Since(start)
	s.log.Info().
		Int("total", rep.TotalUsers).
		Int("batches", rep.Batches).
		Int("updated", rep.Updated).
		Int("unchanged", rep.Unchanged).
		Int("errors", rep.Errors).
		Dur("duration", rep.Duration).
		Msg("recheck sweep finished")
	return rep, nil
}

func (s *Svc) runChunk(ctx context.Context, chunk []domain.User, rep *Report) {
	req := make([]exclusion.BatchUser, 0, len(chunk))
	for _, u := range chunk {
		req = append(req, exclusion.BatchUser{
			CorrelationID: u.ID.String(),
			Person: exclusion.Person{
				FirstName:   u.FirstName,
				LastName:    u.LastName,
				DateOfBirth: u.DateOfBirth,
				Email:       u.Email,
				Mobile:      u.Phone,
				Postcode:    u.Address.Postcode,
			},
		})
	}

	results, err := s.excl.CheckBatch(ctx, req)
	if err != nil {
		s.log.Warn().Err(err).Int("chunk_size", len(chunk)).Msg("batch exclusion check failed")
		rep.Errors += len(chunk)
		return
	}

	byID := make(map[string]exclusion.BatchResult, len(results))
	for _, r := range results {
		byID[r.CorrelationID] = r
	}

	for _, u := range chunk {
		res, ok := byID[u.ID.String()]
		if !ok {
			// the provider dropped the correlation, the user's status is unknown
			s.log.Warn().Str("user_id", u.ID.String()).Msg("no batch result for user")
			rep.Errors++
			continue
		}

		if res.Registered == u.IsSelfExcluded {
			rep.Unchanged++
			continue
		}

		if err := s.repo.UpdateExclusion(ctx, u.ID, res.Registered, res.ProviderRequestID); err != nil {
			s.log.Warn().Err(err).Str("user_id", u.ID.String()).Msg("exclusion update failed")
			rep.Errors++
			continue
		}
		rep.Updated++
		s.archive(ctx, u, res)
	}
}

// archive appends a status transition to the columnar event log, best effort
func (s *Svc) archive(ctx context.Context, u domain.User, res exclusion.BatchResult) {
	if s.ch == nil {
		return
	}
	row := [][]any{{
		u.ID.String(),
		u.IsSelfExcluded,
		res.Registered,
		res.ProviderRequestID,
		time.Now().UTC(),
	}}
	if err := s.ch.Insert(ctx, eventsTable, row); err != nil {
		s.log.Warn().Err(err).Str("user_id", u.ID.String()).Msg("event archive append failed")
	}
}

// filterEligible keeps users carrying every field the batch contract needs
func filterEligible(users []domain.User) []domain.User {
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.FirstName == "" || u.LastName == "" || u.Email == "" || u.Phone == "" {
			continue
		}
		if u.Address == nil || u.Address.Postcode == "" {
			continue
		}
		out = append(out, u)
	}
	return out
}

// chunkUsers splits users into consecutive slices of at most size
func chunkUsers(users []domain.User, size int) [][]domain.User {
	if size <= 0 {
		size = 1
	}
	chunks := make([][]domain.User, 0, (len(users)+size-1)/size)
	for start := 0; start < len(users); start += size {
		end := start + size
		if end > len(users) {
			end = len(users)
		}
		chunks = append(chunks, users[start:end])
	}
	return chunks
}
