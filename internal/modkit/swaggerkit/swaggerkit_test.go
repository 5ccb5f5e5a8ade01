package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tirefit/internal/platform/config"
	phttp "tirefit/internal/platform/net/http"
	"tirefit/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func fetchDoc(t *testing.T, r phttp.Router) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DocsPath+"/doc.json", nil))
	if rec.Code != http.StatusOK {
		return rec.Code, nil
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode spec: %v", err)
	}
	return rec.Code, spec
}

func TestMount_ServesDecoratedDocument(t *testing.T) {
	t.Setenv("SW_DOCS_TITLE_SUFFIX", "(staging)")
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, config.New().Prefix("SW_"), "/api/v1", true)

	code, spec := fetchDoc(t, r)
	if code != http.StatusOK {
		t.Fatalf("doc.json status = %d", code)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	info := spec["info"].(map[string]any)
	if info["title"] != "tirefit API (staging)" {
		t.Fatalf("title = %v", info["title"])
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema missing")
	}
	op := spec["paths"].(map[string]any)["/fitment/alternatives"].(map[string]any)["post"].(map[string]any)
	resps := op["responses"].(map[string]any)
	for _, k := range []string{"200", "400", "500"} {
		if _, ok := resps[k]; !ok {
			t.Fatalf("alternatives missing %s response", k)
		}
	}
}

func TestMount_Disabled(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, config.New(), "/api/v1", false)
	if code, _ := fetchDoc(t, r); code != http.StatusNotFound {
		t.Fatalf("disabled doc.json status = %d", code)
	}
}

func TestMount_RedirectsBarePath(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, config.New(), "/api/v1", true)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DocsPath, nil))
	if rec.Code != http.StatusPermanentRedirect || rec.Header().Get("Location") != DocsPath+"/" {
		t.Fatalf("redirect = %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestServeDocJSON_BadDocument(t *testing.T) {
	testkit.Swap(t, &docReader, func() string { return "{" })
	rec := httptest.NewRecorder()
	serveDocJSON(config.New(), "/api/v1")(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRegister_MutatorRuns(t *testing.T) {
	testkit.Swap(t, &mutators, nil)
	Register(func(spec map[string]any) { spec["x-tirefit"] = true })
	Register(nil)
	if len(mutators) != 1 {
		t.Fatalf("mutators = %d", len(mutators))
	}
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, config.New(), "/api/v1", true)
	if _, spec := fetchDoc(t, r); spec["x-tirefit"] != true {
		t.Fatalf("mutator not applied")
	}
}

func TestEnsureServers_Downgrades(t *testing.T) {
	spec := map[string]any{"swagger": "2.0"}
	ensureServers(spec, "/x")
	if spec["openapi"] != "3.0.3" || spec["swagger"] != nil {
		t.Fatalf("swagger 2 not lifted: %v", spec)
	}
	spec = map[string]any{"openapi": "3.1.0", "servers": []any{}}
	ensureServers(spec, "/x")
	if spec["openapi"] != "3.0.3" || len(spec["servers"].([]any)) != 0 {
		t.Fatalf("3.1 not downgraded or servers replaced: %v", spec)
	}
}
