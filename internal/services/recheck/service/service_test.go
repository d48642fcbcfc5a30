package service

import (
	"context"
	"fmt"
	"testing"

	"turnstile/internal/adapters/exclusion"
	"turnstile/internal/modkit/repokit"
	perr "turnstile/internal/platform/errors"
	"turnstile/internal/platform/testkit"
	"turnstile/internal/services/onboarding/domain"
	"turnstile/internal/services/onboarding/repo"

	"github.com/google/uuid"
)

type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (fakeTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (fakeTx) Tx(ctx context.Context, fn func(q repokit.RowQuerier) error) error {
	return fn(fakeTx{})
}

type fakeRepo struct {
	candidates []domain.User

	updates []struct {
		ID         uuid.UUID
		Registered bool
	}
	updateErr error
}

func (f *fakeRepo) InsertUser(context.Context, domain.User) error { return nil }
func (f *fakeRepo) UserByID(context.Context, uuid.UUID) (domain.User, error) {
	return domain.User{}, perr.ErrNotFound
}

func (f *fakeRepo) UserByJourneyID(context.Context, string) (domain.User, error) {
	return domain.User{}, perr.ErrNotFound
}

func (f *fakeRepo) RecheckCandidates(context.Context) ([]domain.User, error) {
	return f.candidates, nil
}

func (f *fakeRepo) UpdateExclusion(_ context.Context, id uuid.UUID, registered bool, _ string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, struct {
		ID         uuid.UUID
		Registered bool
	}{id, registered})
	return nil
}

func (f *fakeRepo) UpdateJourneyOutcome(context.Context, uuid.UUID, bool, bool) error { return nil }

// fakeBatch answers each chunk in order and records call sequencing
type fakeBatch struct {
	limit int

	calls   [][]exclusion.BatchUser
	respond func(users []exclusion.BatchUser) ([]exclusion.BatchResult, error)
}

func (f *fakeBatch) CheckOne(context.Context, exclusion.Person) (exclusion.CheckResult, error) {
	return exclusion.CheckResult{}, nil
}

func (f *fakeBatch) CheckBatch(_ context.Context, users []exclusion.BatchUser) ([]exclusion.BatchResult, error) {
	f.calls = append(f.calls, users)
	if f.respond != nil {
		return f.respond(users)
	}
	return echoResults(users, false), nil
}

func (f *fakeBatch) BatchLimit() int {
	if f.limit > 0 {
		return f.limit
	}
	return 1000
}

// echoResults mirrors every request row with the given flag
func echoResults(users []exclusion.BatchUser, registered bool) []exclusion.BatchResult {
	out := make([]exclusion.BatchResult, 0, len(users))
	for _, u := range users {
		out = append(out, exclusion.BatchResult{
			CorrelationID:     u.CorrelationID,
			Registered:        registered,
			ProviderRequestID: "prov-" + u.CorrelationID[:8],
		})
	}
	return out
}

func makeUsers(n int) []domain.User {
	users := make([]domain.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, domain.User{
			ID:        uuid.New(),
			FirstName: "First",
			LastName:  "Last",
			Email:     fmt.Sprintf("u%d@example.com", i),
			Phone:     "+447700900123",
			Address:   &domain.Address{Line1: "1 High Street", Postcode: "RM2 5TD"},
		})
	}
	return users
}

func noPause(context.Context) error { return nil }

func newSweep(r *fakeRepo, b *fakeBatch, pauses *int) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return r })
	pause := noPause
	if pauses != nil {
		pause = func(context.Context) error { *pauses++; return nil }
	}
	return New(fakeTx{}, binder, Options{Exclusion: b, Pause: pause})
}

func TestNew_RequiresDeps(t *testing.T) {
	t.Parallel()

	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return &fakeRepo{} })

	testkit.MustPanic(t, func() { New(nil, binder, Options{Exclusion: &fakeBatch{}}) })
	testkit.MustPanic(t, func() { New(fakeTx{}, nil, Options{Exclusion: &fakeBatch{}}) })
	testkit.MustPanic(t, func() { New(fakeTx{}, binder, Options{}) })
	testkit.MustNotPanic(t, func() { New(fakeTx{}, binder, Options{Exclusion: &fakeBatch{}}) })
}

func TestRun_EmptySetSkipsProvider(t *testing.T) {
	t.Parallel()

	b := &fakeBatch{}
	svc := newSweep(&fakeRepo{}, b, nil)

	rep, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.TotalUsers != 0 || rep.Batches != 0 {
		t.Fatalf("report = %+v, want zero sweep", rep)
	}
	if len(b.calls) != 0 {
		t.Fatalf("provider called %d times, want 0", len(b.calls))
	}
}

func TestRun_ChunkCounts(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		users, limit, chunks int
	}{
		{1, 1000, 1},
		{1000, 1000, 1},
		{1001, 1000, 2},
		{2500, 1000, 3},
		{5, 2, 3},
	} {
		b := &fakeBatch{limit: tc.limit}
		svc := newSweep(&fakeRepo{candidates: makeUsers(tc.users)}, b, nil)

		rep, err := svc.Run(context.Background())
		if err != nil {
			t.Fatalf("Run(%d users): %v", tc.users, err)
		}
		if rep.Batches != tc.chunks || len(b.calls) != tc.chunks {
			t.Fatalf("%d users at limit %d: batches = %d calls = %d, want %d",
				tc.users, tc.limit, rep.Batches, len(b.calls), tc.chunks)
		}
	}
}

func TestRun_PausesBetweenChunksOnly(t *testing.T) {
	t.Parallel()

	pauses := 0
	b := &fakeBatch{limit: 2}
	svc := newSweep(&fakeRepo{candidates: makeUsers(5)}, b, &pauses)

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// 3 chunks, pause after the first two
	if pauses != 2 {
		t.Fatalf("pauses = %d, want 2", pauses)
	}
}

func TestRun_MissingCorrelationCountsAsError(t *testing.T) {
	t.Parallel()

	b := &fakeBatch{respond: func(users []exclusion.BatchUser) ([]exclusion.BatchResult, error) {
		return echoResults(users[:1], false), nil // drop the second row
	}}
	svc := newSweep(&fakeRepo{candidates: makeUsers(2)}, b, nil)

	rep, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Errors != 1 || rep.Unchanged != 1 {
		t.Fatalf("report = %+v, want 1 error 1 unchanged", rep)
	}
}

func TestRun_StatusChangePersisted(t *testing.T) {
	t.Parallel()

	r := &fakeRepo{candidates: makeUsers(3)}
	b := &fakeBatch{respond: func(users []exclusion.BatchUser) ([]exclusion.BatchResult, error) {
		return echoResults(users, true), nil // everyone now registered
	}}
	svc := newSweep(r, b, nil)

	rep, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Updated != 3 || rep.Unchanged != 0 || rep.Errors != 0 {
		t.Fatalf("report = %+v, want 3 updated", rep)
	}
	if len(r.updates) != 3 {
		t.Fatalf("updates = %d, want 3", len(r.updates))
	}
	for _, up := range r.updates {
		if !up.Registered {
			t.Fatalf("update %+v, want registered true", up)
		}
	}
}

func TestRun_ChunkFailureContinues(t *testing.T) {
	t.Parallel()

	b := &fakeBatch{limit: 2}
	b.respond = func(users []exclusion.BatchUser) ([]exclusion.BatchResult, error) {
		if len(b.calls) == 1 { // first chunk fails
			return nil, perr.Unavailablef("provider down")
		}
		return echoResults(users, false), nil
	}
	svc := newSweep(&fakeRepo{candidates: makeUsers(4)}, b, nil)

	rep, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Errors != 2 || rep.Unchanged != 2 {
		t.Fatalf("report = %+v, want 2 errors 2 unchanged", rep)
	}
	if len(b.calls) != 2 {
		t.Fatalf("provider calls = %d, want 2", len(b.calls))
	}
}

func TestRun_PersistFailureCountedNotFatal(t *testing.T) {
	t.Parallel()

	r := &fakeRepo{candidates: makeUsers(2), updateErr: perr.DBf("write failed")}
	b := &fakeBatch{respond: func(users []exclusion.BatchUser) ([]exclusion.BatchResult, error) {
		return echoResults(users, true), nil
	}}
	svc := newSweep(r, b, nil)

	rep, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Errors != 2 || rep.Updated != 0 {
		t.Fatalf("report = %+v, want 2 errors 0 updated", rep)
	}
}

func TestFilterEligible_DropsIncompleteRecords(t *testing.T) {
	t.Parallel()

	users := makeUsers(3)
	users[0].Email = ""
	users[1].Address = nil

	got := filterEligible(users)
	if len(got) != 1 {
		t.Fatalf("eligible = %d, want 1", len(got))
	}
	if got[0].ID != users[2].ID {
		t.Fatalf("kept wrong user %s", got[0].ID)
	}
}
