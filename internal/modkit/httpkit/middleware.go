package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"tirefit/internal/platform/config"
	"tirefit/internal/platform/net/middleware"
)

// RootStack is mounted once on the server router: correlation, access log, recovery and the probe
func RootStack(cfg config.Conf) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestContext,
		middleware.AccessLog(middleware.AccessLogOptions{
			Slow: cfg.MayDuration("SLOW_REQUEST", 250*time.Millisecond),
			Skip: []string{"/health"},
		}),
		middleware.RecoverJSON,
		middleware.Heartbeat("/health"),
	}
}

// CommonStack is the per API version middleware slice
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
			MaxAge:         cfg.MayInt("CORS_MAX_AGE", 300),
		}),
		middleware.AllowContentType("application/json"),
		middleware.Compress(flate.BestSpeed),
		middleware.Throttle(
			cfg.MayInt("THROTTLE_LIMIT", 256),
			cfg.MayInt("THROTTLE_BACKLOG", 1024),
			cfg.MayDuration("THROTTLE_WAIT", 5*time.Second),
		),
		middleware.Timeout(cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second)),
	}
}
