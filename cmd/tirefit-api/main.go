// @title         tirefit API
// @version       1.0
// @description   Tire fitment alternatives, speedometer impact and size comparison

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tirefit/internal/platform/config"
	"tirefit/internal/platform/logger"
	phttp "tirefit/internal/platform/net/http"

	"tirefit/internal/services/api"
)

func main() {
	// service-scoped config for HTTP (CORE_API_*); modules read their own prefixes from root
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = "tirefit-api"
	}
	logger.Init(opt)
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// reads CORE_API_PORT / CORE_API_ADDR
	srv := phttp.NewServer(apiCfg)

	apiOpt := api.OptionsFromConfig(root)
	apiOpt.Logger = l
	api.Mount(srv.Router(), apiOpt)

	l.Info().Str("addr", srv.Addr()).Msg("http server starting")
	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("http server stopped")
}
