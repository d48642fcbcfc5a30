//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"turnstile/internal/platform/store"
	"turnstile/internal/services/onboarding/domain"

	"github.com/google/uuid"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres launches a disposable Postgres and returns DSN + stop func
func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

const usersDDL = `
CREATE TABLE IF NOT EXISTS users (
	id uuid PRIMARY KEY,
	first_name text NOT NULL,
	last_name text NOT NULL,
	date_of_birth text,
	email text,
	phone text,
	address_line1 text,
	address_line2 text,
	address_line3 text,
	address_town text,
	address_county text,
	address_postcode text,
	address_country text,
	is_self_excluded boolean NOT NULL DEFAULT false,
	exclusion_request_id text,
	exclusion_checked_at timestamptz,
	kyc_instance_id text,
	kyc_completed boolean NOT NULL DEFAULT false,
	is_identity_verified boolean NOT NULL DEFAULT false,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
)`

func testUser(journey string) domain.User {
	now := time.Now().UTC()
	u := domain.User{
		ID:          uuid.New(),
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-04-01",
		Email:       "jane@example.com",
		Phone:       "+447700900123",
		Address: &domain.Address{
			Line1:    "Flat 2, 280 Eastern Avenue",
			Town:     "Romford",
			Postcode: "RM2 5TD",
			Country:  "GB",
		},
		ExclusionRequestID: "req-1",
		ExclusionCheckedAt: &now,
	}
	if journey != "" {
		u.KYCInstanceID = &journey
	}
	return u
}

func TestRepo_RoundTrip_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "turnstile-repo-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	if _, err := st.PG.Exec(ctx, usersDDL); err != nil {
		t.Fatalf("create table: %v", err)
	}

	r := NewPG().Bind(st.PG)

	u := testUser("journey-abc")
	if err := r.InsertUser(ctx, u); err != nil {
		t.Fatalf("InsertUser: %v", err)
	}

	got, err := r.UserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("UserByID: %v", err)
	}
	if got.FirstName != "Jane" || got.Address == nil || got.Address.Postcode != "RM2 5TD" {
		t.Fatalf("round trip user = %+v", got)
	}
	if got.KYCInstanceID == nil || *got.KYCInstanceID != "journey-abc" {
		t.Fatalf("KYCInstanceID = %v, want journey-abc", got.KYCInstanceID)
	}

	byJourney, err := r.UserByJourneyID(ctx, "journey-abc")
	if err != nil {
		t.Fatalf("UserByJourneyID: %v", err)
	}
	if byJourney.ID != u.ID {
		t.Fatalf("journey lookup found %s, want %s", byJourney.ID, u.ID)
	}

	if err := r.UpdateExclusion(ctx, u.ID, true, "req-2"); err != nil {
		t.Fatalf("UpdateExclusion: %v", err)
	}
	got, err = r.UserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("UserByID after exclusion update: %v", err)
	}
	if !got.IsSelfExcluded || got.ExclusionRequestID != "req-2" {
		t.Fatalf("exclusion update not applied: %+v", got)
	}

	if err := r.UpdateJourneyOutcome(ctx, u.ID, true, true); err != nil {
		t.Fatalf("UpdateJourneyOutcome: %v", err)
	}
	got, err = r.UserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("UserByID after journey update: %v", err)
	}
	if !got.KYCCompleted || !got.IsIdentityVerified {
		t.Fatalf("journey outcome not applied: %+v", got)
	}

	// a second user without an address is excluded from recheck candidates
	noAddr := testUser("")
	noAddr.Address = nil
	if err := r.InsertUser(ctx, noAddr); err != nil {
		t.Fatalf("InsertUser (no address): %v", err)
	}

	cands, err := r.RecheckCandidates(ctx)
	if err != nil {
		t.Fatalf("RecheckCandidates: %v", err)
	}
	if len(cands) != 1 || cands[0].ID != u.ID {
		t.Fatalf("candidates = %d, want only the addressed user", len(cands))
	}
}

func TestRepo_UpdateMissingUser_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "turnstile-repo-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	if _, err := st.PG.Exec(ctx, usersDDL); err != nil {
		t.Fatalf("create table: %v", err)
	}

	r := NewPG().Bind(st.PG)
	if err := r.UpdateExclusion(ctx, uuid.New(), true, "x"); err == nil {
		t.Fatal("UpdateExclusion on missing user succeeded, want error")
	}
	if err := r.UpdateJourneyOutcome(ctx, uuid.New(), true, false); err == nil {
		t.Fatal("UpdateJourneyOutcome on missing user succeeded, want error")
	}
}
