// Package identity provides a client for the identity verification provider
// covering token acquisition, journey orchestration, and document submission
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "turnstile/internal/platform/errors"
	"turnstile/internal/platform/logger"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultMaxRetry  = 3
	defaultRetryBase = 500 * time.Millisecond

	pathJourneyStart = "/captain/api/journey/start"
	pathStateFetch   = "/captain/api/journey/state/fetch"
	pathTaskList     = "/captain/api/journey/task/list"
	pathTaskUpdate   = "/captain/api/journey/task/update"
)

// Options configures the Client
type Options struct {
	BaseURL string
	AuthURL string

	ClientID     string
	ClientSecret string
	Username     string
	Password     string

	Timeout time.Duration

	// TokenSafetyBuffer shaves seconds off a token's lifetime before reuse
	TokenSafetyBuffer time.Duration

	// Retry config for token acquisition on the journey start path
	MaxRetries int
	RetryBase  time.Duration
}

// Client is the provider client, stateless apart from its TokenSource
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger

	tokens *TokenSource

	now func() time.Time
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.TokenSafetyBuffer <= 0 {
		o.TokenSafetyBuffer = defaultSafetyBuffer
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	c := &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("identity"),
		now:  time.Now,
	}
	c.tokens = newTokenSource(c)
	return c
}

// Tokens exposes the client's token source
func (c *Client) Tokens() *TokenSource { return c.tokens }

// postJSON issues a bearer-authorized JSON POST against the provider base url
// and decodes a 2xx body into out when out is non-nil
func (c *Client) postJSON(ctx context.Context, path string, token string, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "identity marshal failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "identity new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "identity request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", c.now().Sub(start)).
		Msg("identity http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return providerStatusError(resp.StatusCode, string(tail))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "identity decode failed")
	}
	return nil
}

// providerStatusError maps a non-2xx status to the error taxonomy
func providerStatusError(status int, tail string) error {
	switch {
	case status == http.StatusUnauthorized:
		return perr.Unauthorizedf("identity status %d body %s", status, tail)
	case status == http.StatusForbidden:
		return perr.Forbiddenf("identity status %d body %s", status, tail)
	case status == http.StatusTooManyRequests:
		return perr.TooManyf("identity status %d body %s", status, tail)
	case status >= 500:
		return perr.Unavailablef("identity status %d body %s", status, tail)
	case status >= 400:
		return perr.InvalidArgf("identity status %d body %s", status, tail)
	default:
		return perr.Internalf("identity unexpected status %d body %s", status, tail)
	}
}
