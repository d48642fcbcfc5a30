package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "turnstile/internal/platform/errors"
)

type screenDTO struct {
	FirstName string `json:"first_name" validate:"required"`
	Postcode  string `json:"postcode"   validate:"required,uk_postcode"`
}

func jsonReq(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestParseJSON_Valid(t *testing.T) {
	t.Parallel()

	in, err := ParseJSON[screenDTO](jsonReq(`{"first_name":"Jane","postcode":"RM2 5TD"}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if in.FirstName != "Jane" || in.Postcode != "RM2 5TD" {
		t.Fatalf("in = %+v", in)
	}
}

func TestParseJSON_UKPostcodeTag(t *testing.T) {
	t.Parallel()

	for _, pc := range []string{"RM2 5TD", "E1 6AN", "SW1A 1AA", "m1 1ae"} {
		if _, err := ParseJSON[screenDTO](jsonReq(`{"first_name":"J","postcode":"` + pc + `"}`)); err != nil {
			t.Errorf("postcode %q rejected: %v", pc, err)
		}
	}
	for _, pc := range []string{"12345", "ABCDEF", "RM2"} {
		_, err := ParseJSON[screenDTO](jsonReq(`{"first_name":"J","postcode":"` + pc + `"}`))
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Errorf("postcode %q: err = %v, want validation", pc, err)
		}
	}
}

func TestParseJSON_MissingFieldCarriesName(t *testing.T) {
	t.Parallel()

	_, err := ParseJSON[screenDTO](jsonReq(`{"postcode":"RM2 5TD"}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
	pe, ok := perr.As(err)
	if !ok || pe.Field() != "first_name" {
		t.Fatalf("field = %v, want first_name", err)
	}
}

func TestParseJSON_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	_, err := ParseJSON[screenDTO](jsonReq(`{"first_name":"J","postcode":"RM2 5TD","extra":1}`))
	if err == nil {
		t.Fatal("unknown field accepted, want error")
	}
}

func TestParseJSON_TrailingDataRejected(t *testing.T) {
	t.Parallel()

	_, err := ParseJSON[screenDTO](jsonReq(`{"first_name":"J","postcode":"RM2 5TD"}{"again":true}`))
	if err == nil {
		t.Fatal("trailing JSON accepted, want error")
	}
}

func TestParseJSON_EmptyBodyToleratedForGet(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	in, err := ParseJSON[screenDTO](r)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if in != (screenDTO{}) {
		t.Fatalf("in = %+v, want zero value", in)
	}
}

func TestParseJSON_EmptyBodyRejectedForPost(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(""))
	if _, err := ParseJSON[screenDTO](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v, want json error", err)
	}
}
