// Package exclusion provides a client for the self-exclusion registry provider
package exclusion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	perr "turnstile/internal/platform/errors"
	"turnstile/internal/platform/logger"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultBatchLimit = 1000

	// the registry reports a registered match as a literal Y,
	// batch responses additionally use P for a partial match
	flagRegistered = "Y"
	flagPartial    = "P"

	headerExclusion = "x-exclusion"
	headerUniqueID  = "x-unique-id"
)

// Options configures the Client
type Options struct {
	// APIURL is the single check endpoint, BatchAPIURL the bulk endpoint
	APIURL      string
	BatchAPIURL string
	APIKey      string
	Timeout     time.Duration

	// BatchLimit caps one bulk request, provider hard limit is 1000
	BatchLimit int
}

// Client performs single and batched registry lookups
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.BatchLimit <= 0 {
		o.BatchLimit = defaultBatchLimit
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("exclusion"),
	}
}

// BatchLimit reports the configured per request cap
func (c *Client) BatchLimit() int { return c.opts.BatchLimit }

// CheckOne issues one synchronous lookup for a single person
// the outcome is carried in response headers, not the body
func (c *Client) CheckOne(ctx context.Context, p Person) (CheckResult, error) {
	form := url.Values{}
	form.Set("firstName", p.FirstName)
	form.Set("lastName", p.LastName)
	form.Set("postcode", p.Postcode)
	if p.DateOfBirth != "" {
		form.Set("dateOfBirth", p.DateOfBirth)
	}
	if p.Email != "" {
		form.Set("email", p.Email)
	}
	if p.Mobile != "" {
		form.Set("mobile", p.Mobile)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.APIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return CheckResult{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "exclusion new request failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-API-Key", c.opts.APIKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return CheckResult{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "exclusion check failed")
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("exclusion single check response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return CheckResult{}, perr.Newf(perr.ErrorCodeUnavailable, "exclusion check status %d", resp.StatusCode)
	}

	return CheckResult{
		Registered:     resp.Header.Get(headerExclusion) == flagRegistered,
		RegistrationID: resp.Header.Get(headerUniqueID),
	}, nil
}

// CheckBatch issues one bulk lookup for up to BatchLimit users
// an empty slice short-circuits locally, an oversized one fails before any network call
func (c *Client) CheckBatch(ctx context.Context, users []BatchUser) ([]BatchResult, error) {
	if len(users) == 0 {
		return []BatchResult{}, nil
	}
	if len(users) > c.opts.BatchLimit {
		return nil, perr.Validationf("batch size %d exceeds limit %d", len(users), c.opts.BatchLimit)
	}

	items := make([]batchItem, 0, len(users))
	for _, u := range users {
		items = append(items, batchItem{
			CorrelationID: u.CorrelationID,
			FirstName:     u.FirstName,
			LastName:      u.LastName,
			DateOfBirth:   u.DateOfBirth,
			Email:         u.Email,
			Mobile:        u.Mobile,
			Postcode:      u.Postcode,
		})
	}
	body, err := json.Marshal(items)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "exclusion batch marshal failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BatchAPIURL, bytes.NewReader(body))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "exclusion new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.opts.APIKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "exclusion batch check failed")
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Int("users", len(users)).
		Str("batch_request_id", resp.Header.Get(headerUniqueID)).
		Dur("latency", time.Since(start)).
		Msg("exclusion batch check response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, perr.Newf(perr.ErrorCodeUnavailable, "exclusion batch check status %d", resp.StatusCode)
	}

	var wire []batchItemResult
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "exclusion batch decode failed")
	}

	out := make([]BatchResult, 0, len(wire))
	for _, it := range wire {
		out = append(out, BatchResult{
			CorrelationID:     it.CorrelationID,
			Registered:        it.Exclusion == flagRegistered || it.Exclusion == flagPartial,
			ProviderRequestID: it.MSRequestID,
		})
	}
	return out, nil
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 1<<20))
	return rc.Close()
}
