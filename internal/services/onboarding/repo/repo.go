// Package repo provides the onboarding repository implementation
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"turnstile/internal/modkit/repokit"
	"turnstile/internal/platform/store"
	pstrings "turnstile/internal/platform/strings"
	"turnstile/internal/services/onboarding/domain"

	"github.com/google/uuid"
)

// Repo is the onboarding persistence surface used by the service layers
type Repo interface {
	InsertUser(ctx context.Context, u domain.User) error
	UserByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	UserByJourneyID(ctx context.Context, instanceID string) (domain.User, error)

	// RecheckCandidates returns users with an address on file, presence of
	// the remaining mandatory fields is filtered in process by the caller
	RecheckCandidates(ctx context.Context) ([]domain.User, error)

	UpdateExclusion(ctx context.Context, id uuid.UUID, registered bool, providerRequestID string) error
	UpdateJourneyOutcome(ctx context.Context, id uuid.UUID, completed, verified bool) error
}

type (
	// PG is a Postgres implementation of the onboarding repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const userColumns = `
	id, first_name, last_name, date_of_birth, email, phone,
	address_line1, address_line2, address_line3, address_town,
	address_county, address_postcode, address_country,
	is_self_excluded, exclusion_request_id, exclusion_checked_at,
	kyc_instance_id, kyc_completed, is_identity_verified,
	created_at, updated_at
`

// InsertUser writes a freshly onboarded record with its compliance fields
func (r *queries) InsertUser(ctx context.Context, u domain.User) error {
	const sql = `
		INSERT INTO users (
			id, first_name, last_name, date_of_birth, email, phone,
			address_line1, address_line2, address_line3, address_town,
			address_county, address_postcode, address_country,
			is_self_excluded, exclusion_request_id, exclusion_checked_at,
			kyc_instance_id, kyc_completed, is_identity_verified,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16,
			$17, FALSE, FALSE,
			NOW(), NOW()
		)
	`
	var l1, l2, l3, town, county, pc, country any
	if a := u.Address; a != nil {
		l1, town, pc, country = a.Line1, a.Town, a.Postcode, a.Country
		l2 = pstrings.SQLNull(a.Line2)
		l3 = pstrings.SQLNull(a.Line3)
		county = pstrings.SQLNull(a.County)
	}
	_, err := r.q.Exec(ctx, sql,
		u.ID, u.FirstName, u.LastName, u.DateOfBirth, u.Email, u.Phone,
		l1, l2, l3, town, county, pc, country,
		u.IsSelfExcluded, pstrings.SQLNull(u.ExclusionRequestID), u.ExclusionCheckedAt,
		u.KYCInstanceID,
	)
	return err
}

// UserByID fetches one user by primary key
func (r *queries) UserByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	const sql = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return store.One(ctx, r.q, scanUser, sql, id)
}

// UserByJourneyID fetches the user owning a verification journey instance
func (r *queries) UserByJourneyID(ctx context.Context, instanceID string) (domain.User, error) {
	const sql = `SELECT ` + userColumns + ` FROM users WHERE kyc_instance_id = $1`
	return store.One(ctx, r.q, scanUser, sql, instanceID)
}

// RecheckCandidates lists users with a stored address, ordered for stable chunking
func (r *queries) RecheckCandidates(ctx context.Context) ([]domain.User, error) {
	const sql = `
		SELECT ` + userColumns + `
		FROM users
		WHERE address_line1 IS NOT NULL
		ORDER BY created_at, id
	`
	return store.Many(ctx, r.q, scanUser, sql)
}

// UpdateExclusion overwrites the stored exclusion flag with a fresh registry result
func (r *queries) UpdateExclusion(ctx context.Context, id uuid.UUID, registered bool, providerRequestID string) error {
	const sql = `
		UPDATE users
		SET is_self_excluded = $2,
		    exclusion_request_id = $3,
		    exclusion_checked_at = NOW(),
		    updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.q.Exec(ctx, sql, id, registered, pstrings.SQLNull(providerRequestID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("user not found for exclusion update")
	}
	return nil
}

// UpdateJourneyOutcome persists the resolved journey decision flags
func (r *queries) UpdateJourneyOutcome(ctx context.Context, id uuid.UUID, completed, verified bool) error {
	const sql = `
		UPDATE users
		SET kyc_completed = $2,
		    is_identity_verified = $3,
		    updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.q.Exec(ctx, sql, id, completed, verified)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("user not found for journey update")
	}
	return nil
}

// scanUser maps one row of userColumns into a domain.User
func scanUser(row store.Row) (domain.User, error) {
	var (
		u                        domain.User
		dob, email, phone        stdsql.NullString
		l1, l2, l3, town         stdsql.NullString
		county, pc, country      stdsql.NullString
		exclReqID, kycInstanceID stdsql.NullString
		exclCheckedAt            stdsql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &dob, &email, &phone,
		&l1, &l2, &l3, &town,
		&county, &pc, &country,
		&u.IsSelfExcluded, &exclReqID, &exclCheckedAt,
		&kycInstanceID, &u.KYCCompleted, &u.IsIdentityVerified,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.DateOfBirth = dob.String
	u.Email = email.String
	u.Phone = phone.String
	u.ExclusionRequestID = exclReqID.String
	if exclCheckedAt.Valid {
		t := exclCheckedAt.Time
		u.ExclusionCheckedAt = &t
	}
	if kycInstanceID.Valid {
		s := kycInstanceID.String
		u.KYCInstanceID = &s
	}
	if l1.Valid {
		u.Address = &domain.Address{
			Line1:    l1.String,
			Line2:    l2.String,
			Line3:    l3.String,
			Town:     town.String,
			County:   county.String,
			Postcode: pc.String,
			Country:  country.String,
		}
	}
	return u, nil
}
