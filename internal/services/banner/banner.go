// Package banner wires the render pipeline onto the HTTP router
package banner

import (
	"timebanner/internal/core/temporal"
	"timebanner/internal/platform/config"
	phttp "timebanner/internal/platform/net/http"
	bannerhttp "timebanner/internal/services/banner/http"
	"timebanner/internal/services/banner/service"
)

// Options are the banner service options
type Options struct {
	Config         config.Conf
	Resolver       *temporal.Resolver
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount builds the banner service and mounts it onto the given router
func Mount(r phttp.Router, opt Options) error {
	svc, err := service.New(opt.Resolver)
	if err != nil {
		return err
	}

	phttp.MountSwagger(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	bannerhttp.Register(r, svc)
	return nil
}
