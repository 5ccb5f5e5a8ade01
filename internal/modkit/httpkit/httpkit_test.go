package httpkit

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tirefit/internal/platform/config"
	perr "tirefit/internal/platform/errors"
	phttp "tirefit/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type speedIn struct {
	Speed float64 `json:"speed" validate:"gt=0"`
}

func serve(r Router, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestSugar_JSONAndCall(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	PostJSON(r, "/double", func(_ *http.Request, in speedIn) (any, error) {
		return map[string]float64{"speed": in.Speed * 2}, nil
	})
	PostJSON(r, "/keyed", func(_ *http.Request, in speedIn) (any, error) {
		return WithHeader(OK(in), "X-Fitment-Key", "k1"), nil
	})
	Get(r, "/ratings/{symbol}", func(req *http.Request) (any, error) {
		if Param(req, "symbol") == "X" {
			return nil, perr.NotFoundf("no rating X")
		}
		return Param(req, "symbol"), nil
	})
	Post(r, "/boom", func(*http.Request) (any, error) { return nil, errors.New("boom") })

	rec := serve(r, http.MethodPost, "/double", `{"speed":60}`)
	if env := decode(t, rec); rec.Code != 200 || env.Data.(map[string]any)["speed"] != float64(120) {
		t.Fatalf("double = %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(r, http.MethodPost, "/keyed", `{"speed":1}`)
	if rec.Code != 200 || rec.Header().Get("X-Fitment-Key") != "k1" {
		t.Fatalf("keyed = %d %v", rec.Code, rec.Header())
	}

	rec = serve(r, http.MethodPost, "/double", `{"speed":-1}`)
	if env := decode(t, rec); rec.Code != 400 || env.Code != perr.ErrorCodeValidation || env.Field != "speed" {
		t.Fatalf("validation = %d %+v", rec.Code, env)
	}

	rec = serve(r, http.MethodGet, "/ratings/V", "")
	if env := decode(t, rec); env.Data != "V" {
		t.Fatalf("rating = %+v", env)
	}
	if rec = serve(r, http.MethodGet, "/ratings/X", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("missing rating = %d", rec.Code)
	}
	if rec = serve(r, http.MethodPost, "/boom", ""); rec.Code != http.StatusInternalServerError {
		t.Fatalf("boom = %d", rec.Code)
	}
}

func TestHandleAndError(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Get("/h", Handle(func(*http.Request) Response { return Error(perr.InvalidArgf("bad label")) }))
	if rec := serve(r, http.MethodGet, "/h", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMountAPIAndUnder(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	hit := 0
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			hit++
			next.ServeHTTP(w, req)
		})
	}
	MountAPIV1(r, []func(http.Handler) http.Handler{mw}, func(api Router) {
		MountUnder(api, "/fitment", nil, func(f Router) {
			Get(f, "/ping", func(*http.Request) (any, error) { return "pong", nil })
		})
		MountUnder(api, "", nil, func(g Router) {
			Get(g, "/root", func(*http.Request) (any, error) { return "root", nil })
		})
	})
	for _, p := range []string{"/api/v1/fitment/ping", "/api/v1/root"} {
		if rec := serve(r, http.MethodGet, p, ""); rec.Code != http.StatusOK {
			t.Fatalf("%s = %d", p, rec.Code)
		}
	}
	if hit != 2 {
		t.Fatalf("api middleware ran %d times", hit)
	}
	if got := APIPrefix("/v2/"); got != "/api/v2" {
		t.Fatalf("APIPrefix = %q", got)
	}
}

func TestStacks(t *testing.T) {
	cfg := config.New().Prefix("STACK_")
	if n := len(RootStack(cfg)); n != 6 {
		t.Fatalf("root stack = %d", n)
	}
	if n := len(CommonStack(cfg)); n != 6 {
		t.Fatalf("common stack = %d", n)
	}

	r := phttp.AdaptChi(chi.NewRouter())
	r.Use(RootStack(cfg)...)
	r.Get("/panic", func(http.ResponseWriter, *http.Request) { panic("boom") })
	rec := serve(r, http.MethodGet, "/panic", "")
	if env := decode(t, rec); rec.Code != 500 || env.Code != perr.ErrorCodePanic || env.RequestID == "" {
		t.Fatalf("panic = %d %+v", rec.Code, env)
	}
	if rec = serve(r, http.MethodGet, "/health", ""); rec.Code != 200 {
		t.Fatalf("heartbeat = %d", rec.Code)
	}
}
