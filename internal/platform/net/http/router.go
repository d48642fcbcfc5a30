package http

import "net/http"

// Handler is the handler signature routes are registered with
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the minimal routing surface the rest of the tree mounts
// against, keeping chi behind one seam
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
