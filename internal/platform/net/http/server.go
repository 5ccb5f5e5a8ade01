package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"tirefit/internal/platform/config"
	"tirefit/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server wraps a chi mux and an http.Server
type Server struct {
	addr         string
	mux          *chi.Mux
	srv          *stdhttp.Server
	drainTimeout time.Duration
}

// NewServer builds a server from cfg (already scoped, e.g. CORE_API_).
// Keys: PORT (default 4000), READ_TIMEOUT, WRITE_TIMEOUT, IDLE_TIMEOUT, SHUTDOWN_TIMEOUT.
// opts receive the mux before any route is mounted
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("ADDR", "")
	if addr == "" {
		addr = cfg.MayPort("PORT", 4000)
	}
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr: addr,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       cfg.MayDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 60*time.Second),
		},
		drainTimeout: cfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Router returns the Router facade over the mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.addr }

// Handler returns the root handler, for httptest
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Run listens on the configured address and blocks until ctx is cancelled or the listener fails.
// Cancellation drains in-flight requests for up to SHUTDOWN_TIMEOUT
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()
	log.Info().Dur("drain", s.drainTimeout).Msg("http shutting down")
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
