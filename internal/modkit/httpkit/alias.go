// Package httpkit re-exports the platform http surface for modules, so
// module code never imports internal/platform/net/http directly
package httpkit

import (
	"encoding/json"
	"net/http"

	phttp "turnstile/internal/platform/net/http"
)

type (
	// Envelope aliases the transport envelope
	Envelope = phttp.Envelope

	// Page aliases the pagination metadata
	Page = phttp.Page

	// Response aliases the return-style response
	Response = phttp.Response

	// Handler aliases the platform handler
	Handler = phttp.Handler

	// Router aliases the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Data is an alias for OK
func Data(v any) Response { return phttp.Data(v) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// List returns a 200 response with items and pagination
func List(items any, total, page, size int, cursor string) Response {
	return phttp.List(items, total, page, size, cursor)
}

// JSON adapts a handler that wants its body decoded but not validated.
// Prefer the typed route sugar (PostJSON et al) for validated payloads
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		var in T
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&in); err != nil {
			return phttp.Error(err)
		}
		return outcome(fn(r, in))
	})
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return outcome(fn(r))
	})
}

// Handle directly adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

// outcome folds a handler's (value, error) pair into a Response, letting
// handlers return a ready Response when they need full control
func outcome(out any, err error) Response {
	if err != nil {
		return phttp.Error(err)
	}
	if resp, ok := out.(phttp.Response); ok {
		return resp
	}
	return phttp.OK(out)
}
