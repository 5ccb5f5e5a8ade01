package middleware

import (
	"net/http"
	"runtime/debug"

	perr "tirefit/internal/platform/errors"
	"tirefit/internal/platform/logger"
	phttp "tirefit/internal/platform/net/http"
)

// RecoverJSON turns a panic into a 500 JSON envelope and logs the stack with the request id.
// http.ErrAbortHandler is re-panicked so the server can abort the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			phttp.RespondError(w, r, perr.PanicErrf("internal error"))
		}()
		next.ServeHTTP(w, r)
	})
}
