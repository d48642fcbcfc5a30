package identity

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "turnstile/internal/platform/errors"
)

// provider stands up a fake auth plus journey endpoint pair
type provider struct {
	t *testing.T

	tokenHits int
	tokenFail int // fail this many token calls before succeeding

	requests map[string][]map[string]any // path -> decoded bodies
	respond  map[string]any              // path -> response body
}

func newProvider(t *testing.T) *provider {
	return &provider{
		t:        t,
		requests: map[string][]map[string]any{},
		respond:  map[string]any{},
	}
}

func (p *provider) client() (*Client, func()) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, _ *http.Request) {
		p.tokenHits++
		if p.tokenHits <= p.tokenFail {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-xyz", "token_type": "Bearer", "expires_in": 3600,
		})
	})
	mux.HandleFunc("/captain/api/journey/", func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok-xyz" {
			p.t.Errorf("Authorization = %q, want Bearer tok-xyz", auth)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			p.t.Errorf("decode %s: %v", r.URL.Path, err)
		}
		p.requests[r.URL.Path] = append(p.requests[r.URL.Path], body)

		resp, ok := p.respond[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	srv := httptest.NewServer(mux)
	c := NewClient(Options{
		BaseURL:   srv.URL,
		AuthURL:   srv.URL + "/token",
		RetryBase: 1, // keep retry tests fast
	})
	return c, srv.Close
}

func testPerson() Person {
	return Person{
		FirstName: "jane",
		LastName:  "doe",
		Email:     "jane@example.com",
		Address: &Address{
			Line1:    "Flat 2, 280 Eastern Avenue",
			Town:     "Romford",
			Postcode: "RM2 5TD",
			Country:  "GB",
		},
	}
}

func TestStart_SplitsAddressAndTitleCasesNames(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.respond[pathJourneyStart] = map[string]any{"instanceId": "inst-1"}
	c, done := p.client()
	defer done()

	id, err := c.Start(context.Background(), testPerson(), "user-9")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if id != "inst-1" {
		t.Fatalf("instance = %q, want inst-1", id)
	}

	body := p.requests[pathJourneyStart][0]
	ident := body["identity"].(map[string]any)
	if ident["firstName"] != "Jane" || ident["lastName"] != "Doe" {
		t.Fatalf("names = %v %v, want title cased", ident["firstName"], ident["lastName"])
	}
	addr := ident["address"].(map[string]any)
	if addr["premise"] != "280" || addr["thoroughfare"] != "Eastern Avenue" {
		t.Fatalf("address split = %v / %v, want 280 / Eastern Avenue", addr["premise"], addr["thoroughfare"])
	}
	if body["resourceId"] != "user-9" {
		t.Fatalf("resourceId = %v, want user-9", body["resourceId"])
	}
}

func TestStart_MissingAddressFailsValidation(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	c, done := p.client()
	defer done()

	person := testPerson()
	person.Address = nil
	_, err := c.Start(context.Background(), person, "user-9")
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
	if p.tokenHits != 0 {
		t.Fatalf("token hits = %d, want 0 before validation", p.tokenHits)
	}
}

func TestStart_TokenRetriesThenFails(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.tokenFail = 10 // never recovers inside the retry budget
	c, done := p.client()
	defer done()

	_, err := c.Start(context.Background(), testPerson(), "user-9")
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("err = %v, want unauthorized", err)
	}
	if p.tokenHits != defaultMaxRetry {
		t.Fatalf("token attempts = %d, want %d", p.tokenHits, defaultMaxRetry)
	}
}

func TestStart_TokenRecoversWithinRetries(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.tokenFail = 2
	p.respond[pathJourneyStart] = map[string]any{"instanceId": "inst-2"}
	c, done := p.client()
	defer done()

	id, err := c.Start(context.Background(), testPerson(), "user-9")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if id != "inst-2" {
		t.Fatalf("instance = %q, want inst-2", id)
	}
	if p.tokenHits != 3 {
		t.Fatalf("token attempts = %d, want 3", p.tokenHits)
	}
}

func TestFetchState_ExtractsDecisionFromFlow(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.respond[pathStateFetch] = map[string]any{
		"status": "Completed",
		"context": map[string]any{
			"flow": []map[string]any{
				{"step": "document-check", "outcome": "ok"},
				{"step": "final", "outcome": "Decision: Pass 2+2"},
			},
		},
	}
	c, done := p.client()
	defer done()

	st, err := c.FetchState(context.Background(), "inst-1", "tok-xyz")
	if err != nil {
		t.Fatalf("FetchState: %v", err)
	}
	if st.Status != "Completed" || st.Decision != "Pass 2+2" {
		t.Fatalf("state = %+v, want Completed / Pass 2+2", st)
	}

	body := p.requests[pathStateFetch][0]
	keys := body["filterKeys"].([]any)
	if len(keys) != 1 || keys[0] != "flow" {
		t.Fatalf("filterKeys = %v, want [flow]", keys)
	}
}

func TestFetchState_NilContextIsPending(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.respond[pathStateFetch] = map[string]any{"status": "InProgress"}
	c, done := p.client()
	defer done()

	st, err := c.FetchState(context.Background(), "inst-1", "tok-xyz")
	if err != nil {
		t.Fatalf("FetchState: %v", err)
	}
	if st.Decision != "" || st.Status != "InProgress" {
		t.Fatalf("state = %+v, want pending InProgress", st)
	}
}

func TestRetrieveTasks_EmptyListIsValid(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.respond[pathTaskList] = map[string]any{"status": "Completed", "instanceId": "inst-1"}
	c, done := p.client()
	defer done()

	tasks, err := c.RetrieveTasks(context.Background(), "inst-1", "tok-xyz")
	if err != nil {
		t.Fatalf("RetrieveTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("tasks = %d, want 0", len(tasks))
	}
}

func TestSubmitDocuments_CompleteIntentPayload(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	p.respond[pathTaskUpdate] = map[string]any{"status": "Completed", "instanceId": "inst-1"}
	c, done := p.client()
	defer done()

	doc := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpegbytes"))
	res, err := c.SubmitDocuments(context.Background(), "inst-1", "task-1", "jane", "doe", []string{doc}, "tok-xyz")
	if err != nil {
		t.Fatalf("SubmitDocuments: %v", err)
	}
	if res.Status != "Completed" {
		t.Fatalf("status = %q, want Completed", res.Status)
	}

	body := p.requests[pathTaskUpdate][0]
	if body["intent"] != "Complete" || body["taskId"] != "task-1" {
		t.Fatalf("body = %v, want Complete intent on task-1", body)
	}
	cctx := body["context"].(map[string]any)
	if cctx["firstName"] != "Jane" {
		t.Fatalf("firstName = %v, want title cased Jane", cctx["firstName"])
	}
}

func TestSubmitDocuments_InvalidDocumentCarriesFieldIndex(t *testing.T) {
	t.Parallel()

	p := newProvider(t)
	c, done := p.client()
	defer done()

	good := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("ok"))
	_, err := c.SubmitDocuments(
		context.Background(), "inst-1", "task-1", "jane", "doe",
		[]string{good, "not-a-data-url"}, "tok-xyz",
	)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
	pe, ok := perr.As(err)
	if !ok || pe.Field() != "documents[1]" {
		t.Fatalf("field = %v, want documents[1]", err)
	}
	if len(p.requests[pathTaskUpdate]) != 0 {
		t.Fatal("provider called despite invalid document")
	}
}

func TestProviderStatusError_Mapping(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		status int
		code   perr.ErrorCode
	}{
		{http.StatusUnauthorized, perr.ErrorCodeUnauthorized},
		{http.StatusForbidden, perr.ErrorCodeForbidden},
		{http.StatusTooManyRequests, perr.ErrorCodeTooManyRequests},
		{http.StatusBadGateway, perr.ErrorCodeUnavailable},
		{http.StatusUnprocessableEntity, perr.ErrorCodeInvalidArgument},
	} {
		err := providerStatusError(tc.status, "")
		if !perr.IsCode(err, tc.code) {
			t.Errorf("status %d mapped to %v, want code %d", tc.status, err, tc.code)
		}
	}
}
