package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
// an empty prefix groups the routes on r itself
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	sub := func(s Router) {
		if len(mw) > 0 {
			s.Use(mw...)
		}
		mount(s)
	}
	if prefix == "" || prefix == "/" {
		r.Group(sub)
		return
	}
	r.Route(prefix, sub)
}
