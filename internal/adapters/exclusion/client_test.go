package exclusion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "turnstile/internal/platform/errors"
)

func TestCheckOne_RegisteredHeader(t *testing.T) {
	t.Parallel()

	var gotKey, gotFirst string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotFirst = r.PostFormValue("firstName")
		w.Header().Set("x-exclusion", "Y")
		w.Header().Set("x-unique-id", "req-42")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Options{APIURL: srv.URL, APIKey: "secret"})
	res, err := c.CheckOne(context.Background(), Person{FirstName: "Jane", LastName: "Doe", Postcode: "RM2 5TD"})
	if err != nil {
		t.Fatalf("CheckOne: %v", err)
	}
	if !res.Registered || res.RegistrationID != "req-42" {
		t.Fatalf("res = %+v, want registered via req-42", res)
	}
	if gotKey != "secret" {
		t.Fatalf("api key = %q, want secret", gotKey)
	}
	if gotFirst != "Jane" {
		t.Fatalf("firstName = %q, want Jane", gotFirst)
	}
}

// a single check treats only a literal Y as registered, P is not a match here
func TestCheckOne_PartialFlagIsNotRegistered(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("x-exclusion", "P")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Options{APIURL: srv.URL})
	res, err := c.CheckOne(context.Background(), Person{FirstName: "Jane", LastName: "Doe", Postcode: "RM2 5TD"})
	if err != nil {
		t.Fatalf("CheckOne: %v", err)
	}
	if res.Registered {
		t.Fatal("Registered = true for P on single check, want false")
	}
}

func TestCheckOne_NonOKStatusIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Options{APIURL: srv.URL})
	_, err := c.CheckOne(context.Background(), Person{FirstName: "Jane", LastName: "Doe", Postcode: "RM2 5TD"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}

func TestCheckBatch_PartialAndFullFlagsRegister(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in []map[string]string
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode: %v", err)
		}
		out := make([]map[string]string, 0, len(in))
		flags := []string{"Y", "P", "N"}
		for i, row := range in {
			out = append(out, map[string]string{
				"correlationId": row["correlationId"],
				"exclusion":     flags[i],
				"msRequestId":   "ms-1",
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	c := NewClient(Options{BatchAPIURL: srv.URL})
	users := []BatchUser{
		{CorrelationID: "a", Person: Person{FirstName: "A", LastName: "A", Postcode: "E1 6AN"}},
		{CorrelationID: "b", Person: Person{FirstName: "B", LastName: "B", Postcode: "E1 6AN"}},
		{CorrelationID: "c", Person: Person{FirstName: "C", LastName: "C", Postcode: "E1 6AN"}},
	}
	res, err := c.CheckBatch(context.Background(), users)
	if err != nil {
		t.Fatalf("CheckBatch: %v", err)
	}
	if len(res) != 3 {
		t.Fatalf("results = %d, want 3", len(res))
	}
	want := []bool{true, true, false} // Y and P register on the batch path
	for i, r := range res {
		if r.Registered != want[i] {
			t.Fatalf("result %d = %+v, want registered %v", i, r, want[i])
		}
	}
}

func TestCheckBatch_OverLimitFailsFast(t *testing.T) {
	t.Parallel()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Options{BatchAPIURL: srv.URL, BatchLimit: 2})
	users := make([]BatchUser, 3)
	_, err := c.CheckBatch(context.Background(), users)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
	if called {
		t.Fatal("provider called despite oversized batch")
	}
}

func TestCheckBatch_EmptyShortCircuits(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("provider called for empty batch")
	}))
	defer srv.Close()

	c := NewClient(Options{BatchAPIURL: srv.URL})
	res, err := c.CheckBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("CheckBatch: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("results = %d, want 0", len(res))
	}
}
