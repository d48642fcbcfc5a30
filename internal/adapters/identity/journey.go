package identity

import (
	"context"
	"strconv"
	"strings"

	perr "turnstile/internal/platform/errors"
	"turnstile/internal/platform/retry"
	pstrings "turnstile/internal/platform/strings"
)

// decisionMarker tags the flow step carrying the journey outcome
const decisionMarker = "Decision:"

// startRequest is the structured identity payload for journey/start
type startRequest struct {
	ResourceID string       `json:"resourceId"`
	Identity   identityBody `json:"identity"`
}

type identityBody struct {
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	DateOfBirth string      `json:"dateOfBirth,omitempty"`
	Address     addressBody `json:"address"`
	Email       string      `json:"email,omitempty"`
	Phone       string      `json:"phone,omitempty"`
}

type addressBody struct {
	Premise      string `json:"premise"`
	Thoroughfare string `json:"thoroughfare"`
	Line2        string `json:"line2,omitempty"`
	Line3        string `json:"line3,omitempty"`
	Town         string `json:"town"`
	County       string `json:"county,omitempty"`
	Postcode     string `json:"postcode"`
	Country      string `json:"country"`
}

// Start begins a verification journey and returns the provider instance id
// the person must carry an address, a fresh token is fetched with bounded retries
// and failure is surfaced to the caller as-is
func (c *Client) Start(ctx context.Context, p Person, resourceID string) (string, error) {
	if p.Address == nil {
		return "", perr.Validationf("address is required to start verification")
	}

	tok, err := retry.Do(ctx, func(ctx context.Context) (AuthToken, error) {
		return c.tokens.Fresh(ctx)
	}, c.opts.MaxRetries, c.opts.RetryBase)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnauthorized, "identity token acquisition failed")
	}

	req := startRequest{
		ResourceID: resourceID,
		Identity: identityBody{
			FirstName:   pstrings.TitleName(p.FirstName),
			LastName:    pstrings.TitleName(p.LastName),
			DateOfBirth: p.DateOfBirth,
			Email:       p.Email,
			Phone:       p.Phone,
			Address: addressBody{
				Premise:      ExtractPremise(p.Address.Line1),
				Thoroughfare: Thoroughfare(p.Address.Line1),
				Line2:        p.Address.Line2,
				Line3:        p.Address.Line3,
				Town:         p.Address.Town,
				County:       p.Address.County,
				Postcode:     p.Address.Postcode,
				Country:      p.Address.Country,
			},
		},
	}

	var wire startWire
	if err := c.postJSON(ctx, pathJourneyStart, tok.AccessToken, req, &wire); err != nil {
		return "", err
	}
	if wire.InstanceID == "" {
		return "", perr.Internalf("identity start returned no instance id")
	}

	c.log.Info().Str("instance_id", wire.InstanceID).Msg("identity journey started")
	return wire.InstanceID, nil
}

// FetchState polls the journey's current context
// an absent context means the journey is still pending with no decision yet
func (c *Client) FetchState(ctx context.Context, instanceID, token string) (JourneyState, error) {
	in := map[string]any{
		"instanceId": instanceID,
		"filterKeys": []string{"flow"},
	}
	var wire stateWire
	if err := c.postJSON(ctx, pathStateFetch, token, in, &wire); err != nil {
		return JourneyState{}, err
	}

	st := JourneyState{Status: wire.Status}
	if wire.Context == nil {
		return st, nil
	}
	for _, step := range wire.Context.Flow {
		if idx := strings.Index(step.Outcome, decisionMarker); idx >= 0 {
			st.Decision = strings.TrimSpace(step.Outcome[idx+len(decisionMarker):])
		}
	}
	return st, nil
}

// RetrieveTasks lists outstanding journey tasks
// an empty or null list is a valid terminal "nothing to submit"
func (c *Client) RetrieveTasks(ctx context.Context, instanceID, token string) ([]Task, error) {
	in := map[string]any{"instanceId": instanceID}
	var wire taskListWire
	if err := c.postJSON(ctx, pathTaskList, token, in, &wire); err != nil {
		return nil, err
	}
	return wire.Tasks, nil
}

// SubmitDocuments completes a task by attaching document images under a
// single Complete intent, every document must already be validated
func (c *Client) SubmitDocuments(
	ctx context.Context,
	instanceID, taskID string,
	firstName, lastName string,
	documents []string,
	token string,
) (SubmitResult, error) {
	if len(documents) == 0 {
		return SubmitResult{}, perr.Validationf("at least one document is required")
	}
	for i, d := range documents {
		if err := ValidateDocument(d); err != nil {
			return SubmitResult{}, perr.WithField(err, "documents["+strconv.Itoa(i)+"]")
		}
	}

	in := map[string]any{
		"intent":     "Complete",
		"instanceId": instanceID,
		"taskId":     taskID,
		"context": map[string]any{
			"firstName": pstrings.TitleName(firstName),
			"lastName":  pstrings.TitleName(lastName),
			"documents": documents,
		},
	}
	var wire taskUpdateWire
	if err := c.postJSON(ctx, pathTaskUpdate, token, in, &wire); err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{Status: wire.Status, InstanceID: wire.InstanceID}, nil
}
