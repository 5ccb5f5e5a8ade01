// Package api mounts the tirefit HTTP API
package api

import (
	"tirefit/internal/platform/config"
	"tirefit/internal/platform/logger"
	phttp "tirefit/internal/platform/net/http"

	"tirefit/internal/modkit"
	"tirefit/internal/modkit/httpkit"
	"tirefit/internal/modkit/module"
	"tirefit/internal/modkit/swaggerkit"

	fitmentdomain "tirefit/internal/services/api/fitment/domain"
	fitmentmod "tirefit/internal/services/api/fitment/module"
	metamod "tirefit/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// OptionsFromConfig reads the CORE_API_* toggles
func OptionsFromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_API_")
	return Options{
		Config:         cfg,
		EnableSwagger:  c.MayBool("SWAGGER", false),
		EnableProfiler: c.MayBool("PROFILER", false),
	}
}

// Mount mounts the API service onto the given router and returns the mounted modules
func Mount(r phttp.Router, opt Options) []module.Module {
	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
	}
	apiCfg := opt.Config.Prefix("CORE_API_")

	fitment := fitmentmod.New(deps)
	mods := []module.Module{
		fitment,
		metamod.New(deps),
	}
	defaults := module.MustPortsOf[fitmentdomain.DefaultsPort](fitment).Defaults()

	r.Use(httpkit.RootStack(apiCfg)...)
	r.NotFound(phttp.NotFound)
	r.MethodNotAllowed(phttp.MethodNotAllowed)

	swaggerkit.Mount(r, apiCfg, httpkit.APIPrefix("v1"), opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(apiCfg), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m)
			m.MountRoutes(api)
		}
	})

	deps.Logger().Info().
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Int("modules", len(mods)).
		Float64("default_tolerance", defaults.MaxDeviationPercent).
		Msg("api mounted")
	return mods
}
