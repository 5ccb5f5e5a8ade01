package modkit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tirefit/internal/modkit/httpkit"
	"tirefit/internal/platform/config"
	"tirefit/internal/platform/logger"
	phttp "tirefit/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults %+v", b)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatalf("hooks must default to no-ops")
	}
}

func TestBuild_OptionsApplyInOrder(t *testing.T) {
	type ports struct{ N int }
	mw := func(next http.Handler) http.Handler { return next }
	b := Build(
		WithName("fitment"),
		WithPrefix("/fitment"),
		WithMiddlewares(mw),
		WithMiddlewares(mw, mw),
		WithPorts(ports{N: 7}),
		WithName("renamed"),
	)
	if b.Name != "renamed" || b.Prefix != "/fitment" || len(b.Mw) != 3 {
		t.Fatalf("unexpected build %+v", b)
	}
	if p, ok := b.Ports.(ports); !ok || p.N != 7 {
		t.Fatalf("ports = %#v", b.Ports)
	}
}

func TestBuilt_MountRunsHooksAndMiddleware(t *testing.T) {
	var order []string
	b := Build(
		WithPrefix("/fitment"),
		WithMiddlewares(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Module", "fitment")
				next.ServeHTTP(w, r)
			})
		}),
		WithSubrouter(func(r phttp.Router) phttp.Router {
			order = append(order, "subrouter")
			return r
		}),
		WithRegister(func(r phttp.Router) {
			order = append(order, "extra")
			r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "extra") })
		}),
	)

	r := phttp.AdaptChi(chi.NewRouter())
	b.Mount(r, func(rr httpkit.Router) {
		order = append(order, "own")
		rr.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
	})

	if len(order) != 3 || order[0] != "subrouter" || order[1] != "own" || order[2] != "extra" {
		t.Fatalf("hook order = %v", order)
	}
	for path, body := range map[string]string{"/fitment/ping": "pong", "/fitment/extra": "extra"} {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Body.String() != body || rec.Header().Get("X-Module") != "fitment" {
			t.Fatalf("%s = %q %v", path, rec.Body.String(), rec.Header())
		}
	}
}

func TestDeps_LoggerFallsBackToRoot(t *testing.T) {
	if (Deps{}).Logger() != logger.Get() {
		t.Fatalf("zero deps must use the root logger")
	}
	l := logger.Named("test")
	if (Deps{Log: l, Cfg: config.New()}).Logger() != l {
		t.Fatalf("explicit logger ignored")
	}
}

type stub struct{ ports any }

func (s *stub) MountRoutes(phttp.Router) {}

func (s *stub) Ports() any { return s.ports }

func (s *stub) Name() string { return "stub" }

func TestBuilder_Signature(t *testing.T) {
	var b Builder = func(_ Deps, opts ...Option) Module {
		return &stub{ports: Build(opts...).Ports}
	}
	m := b(Deps{}, WithPorts("ok"))
	if m.Ports() != "ok" {
		t.Fatalf("ports = %v", m.Ports())
	}
}
