// Package module wires fitment into the API using modkit
package module

import (
	modkit "tirefit/internal/modkit"
	"tirefit/internal/modkit/httpkit"
	str "tirefit/internal/platform/strings"

	fitmenthttp "tirefit/internal/services/api/fitment/http"
	fitmentsvc "tirefit/internal/services/api/fitment/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	svc   fitmentsvc.Service
	ports Ports
}

// New constructs a fitment module; defaults come from CORE_FITMENT_* config
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("fitment"),
		modkit.WithPrefix("/fitment"),
	}, opts...)...)

	svc := fitmentsvc.New(fitmentsvc.DefaultsFromConfig(deps.Cfg))
	d := svc.Defaults()
	deps.Logger().Debug().
		Float64("tolerance", d.MaxDeviationPercent).
		Int("width_range", d.AllowedWidthRange).
		Int("rim_range", d.AllowedDiameterRange).
		Floats64("impact_speeds", d.ImpactSpeeds).
		Msg("fitment module configured")

	return &Module{
		deps:  deps,
		built: b,
		svc:   svc,
		ports: Ports{Service: svc, Defaults: svc},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		fitmenthttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }
