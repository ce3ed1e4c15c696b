// @title         timebanner API
// @version       0.1.0
// @description   Renders a point in time as an SVG or PNG banner

package main

import (
	"context"

	"timebanner/internal/core/temporal"
	"timebanner/internal/platform/config"
	"timebanner/internal/platform/logger"
	phttp "timebanner/internal/platform/net/http"
	"timebanner/internal/platform/net/middleware"

	"timebanner/internal/services/banner"
)

func main() {
	// service-scoped config (TIMEBANNER_*)
	root := config.New()
	cfg := root.Prefix("TIMEBANNER_")

	// bring up logging early
	l := logger.Get()

	// the abbreviation table ships with the binary, a bad line is a deploy
	// defect and stops the process before it serves anything
	tbl, err := temporal.LoadAbbrevTable()
	if err != nil {
		l.Panic().Err(err).Msg("abbreviation table build failed")
	}
	l.Info().Int("abbreviations", tbl.Len()).Msg("abbreviation table loaded")

	order, err := temporal.ParseDateOrder(cfg.MayEnum("DATE_ORDER", "ymd", "ymd", "mdy", "dmy"))
	if err != nil {
		l.Panic().Err(err).Msg("bad DATE_ORDER")
	}
	resolver := temporal.NewResolver(tbl, temporal.Config{
		Order:  order,
		Strict: cfg.MayBool("STRICT", false),
	})

	// http server (reads TIMEBANNER_PORT)
	srv := phttp.NewServer(cfg)

	r := srv.Router()
	r.Use(middleware.Defaults()...)
	r.Use(middleware.RecoverJSON)
	r.Use(middleware.AccessLogZerolog(middleware.AccessLogOptions{
		Slow: cfg.MayDuration("SLOW_REQUEST", 0),
	}))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(middleware.CORS(middleware.CORSOptions{
		AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
	}))

	if err := banner.Mount(r, banner.Options{
		Config:         cfg,
		Resolver:       resolver,
		EnableSwagger:  cfg.MayBool("SWAGGER", true),
		EnableProfiler: cfg.MayBool("PROFILER", false),
	}); err != nil {
		l.Panic().Err(err).Msg("banner mount failed")
	}

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
