// Package swaggerkit mounts the swagger UI and the served OpenAPI document
package swaggerkit

import (
	"net/http"

	"tirefit/internal/platform/config"
	phttp "tirefit/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI lives; the document is served at DocsPath + "/doc.json"
const DocsPath = "/api/docs"

// Mount the swagger UI and JSON document when enabled. baseURL is the API server url, e.g. /api/v1
func Mount(r phttp.Router, cfg config.Conf, baseURL string, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON(cfg, baseURL))
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(DocsPath+"/doc.json"),
	))
}
