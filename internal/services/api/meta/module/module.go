// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "tirefit/internal/modkit"
	"tirefit/internal/modkit/httpkit"
	"tirefit/internal/modkit/module"
	str "tirefit/internal/platform/strings"

	fitmentdomain "tirefit/internal/services/api/fitment/domain"
	fitmentmod "tirefit/internal/services/api/fitment/module"
	metahttp "tirefit/internal/services/api/meta/http"
)

// DefaultServiceName is reported when CORE_API_SERVICE_NAME is unset
const DefaultServiceName = "tirefit-api"

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	built     modkit.Built
	service   string
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{
		deps:      deps,
		built:     b,
		service:   deps.Cfg.Prefix("CORE_API_").MayString("SERVICE_NAME", DefaultServiceName),
		startedAt: time.Now(),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName:     m.service,
			StartedAt:       m.startedAt,
			FitmentDefaults: fitmentDefaults,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }

// fitmentDefaults reads the defaults port of the registered fitment module
func fitmentDefaults() (fitmentdomain.Defaults, bool) {
	p, ok := module.PortsAs[fitmentmod.Ports]("fitment")
	if !ok || p.Defaults == nil {
		return fitmentdomain.Defaults{}, false
	}
	return p.Defaults.Defaults(), true
}
