// Package http provides meta endpoints
package http

import (
	stdhttp "net/http"
	"slices"
	"time"

	"tirefit/internal/core/version"
	"tirefit/internal/modkit/httpkit"
	"tirefit/internal/modkit/module"
	fitmentdomain "tirefit/internal/services/api/fitment/domain"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Now         func() time.Time

	// FitmentDefaults reports the search defaults when the fitment module is registered
	FitmentDefaults func() (fitmentdomain.Defaults, bool)
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"tirefit-api"`
	Started string `json:"started" example:"2026-10-17T08:00:00Z"`
	Now     string `json:"now"     example:"2026-10-17T08:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string   `json:"name"    example:"tirefit-api"`
	Started string   `json:"started" example:"2026-10-17T08:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Modules []string `json:"modules"`

	FitmentDefaults *fitmentdomain.Defaults `json:"fitment_defaults,omitempty"`
}

// health godoc
// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(*stdhttp.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// version godoc
// @Summary Build information
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(*stdhttp.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// service godoc
// @Summary Service name, uptime and the modules that exposed ports
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h *handlers) service(*stdhttp.Request) (any, error) {
	mods := module.Names()
	slices.Sort(mods)
	resp := ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.deps.Now().Sub(h.deps.StartedAt).Seconds()),
		Modules: mods,
	}
	if h.deps.FitmentDefaults != nil {
		if d, ok := h.deps.FitmentDefaults(); ok {
			resp.FitmentDefaults = &d
		}
	}
	return resp, nil
}
