package httpkit

import "net/http"

// MountUnder mounts a module subrouter at prefix, applying the module's
// middlewares before its routes register
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
