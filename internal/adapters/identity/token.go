package identity

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	perr "turnstile/internal/platform/errors"
)

// defaultSafetyBuffer keeps a margin before expiry so a token is never
// used right at the edge of its lifetime
const defaultSafetyBuffer = 300 * time.Second

// TokenSource owns the provider bearer token lifecycle
// it is the single writer, callers only read tokens from it
type TokenSource struct {
	c *Client

	mu     sync.Mutex
	cached *AuthToken
}

func newTokenSource(c *Client) *TokenSource {
	return &TokenSource{c: c}
}

// Fresh always fetches a new token from the OAuth2 password grant endpoint
// it never consults or updates the cache
func (t *TokenSource) Fresh(ctx context.Context) (AuthToken, error) {
	form := url.Values{}
	form.Set("client_id", t.c.opts.ClientID)
	form.Set("client_secret", t.c.opts.ClientSecret)
	form.Set("grant_type", "password")
	form.Set("scope", "openid")
	form.Set("username", t.c.opts.Username)
	form.Set("password", t.c.opts.Password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.c.opts.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return AuthToken{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "token new request failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	issued := t.c.now()
	resp, err := t.c.http.Do(req)
	if err != nil {
		return AuthToken{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "token request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return AuthToken{}, perr.Unauthorizedf("token status %d body %s", resp.StatusCode, string(tail))
	}

	var wire tokenWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return AuthToken{}, perr.Wrapf(err, perr.ErrorCodeJSON, "token decode failed")
	}
	if wire.AccessToken == "" {
		return AuthToken{}, perr.Unauthorizedf("token response missing access_token")
	}

	return AuthToken{
		AccessToken: wire.AccessToken,
		TokenType:   wire.TokenType,
		ExpiresIn:   wire.ExpiresIn,
		IssuedAt:    issued,
	}, nil
}

// Get returns the cached token while it is still inside its safety window,
// refreshing single-flight otherwise
func (t *TokenSource) Get(ctx context.Context) (AuthToken, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cached != nil && t.c.now().Before(t.cached.ExpiresAt().Add(-t.c.opts.TokenSafetyBuffer)) {
		return *t.cached, nil
	}

	tok, err := t.Fresh(ctx)
	if err != nil {
		return AuthToken{}, err
	}
	t.cached = &tok
	return tok, nil
}

// Invalidate drops the cached token so the next Get refreshes
func (t *TokenSource) Invalidate() {
	t.mu.Lock()
	t.cached = nil
	t.mu.Unlock()
}
