// Package http provides the banner endpoints
package http

import (
	"fmt"
	stdhttp "net/http"
	"net/url"

	phttp "timebanner/internal/platform/net/http"
	"timebanner/internal/platform/net/http/bind"
	"timebanner/internal/services/banner/domain"
	"timebanner/internal/services/banner/service"

	"github.com/go-chi/chi/v5"
)

type handlers struct {
	svc *service.Service
}

// Register mounts the banner routes. The implicit catch-all route goes last
// so the named routes win
func Register(r phttp.Router, svc *service.Service) {
	h := &handlers{svc: svc}

	r.Get("/", phttp.Handle(h.root))
	r.Get("/favicon.ico", phttp.Handle(h.favicon))
	r.Get("/relative/{expr}", phttp.Handle(h.banner(domain.ModeRelative)))
	r.Get("/absolute/{expr}", phttp.Handle(h.banner(domain.ModeAbsolute)))
	r.Get("/{expr}", phttp.Handle(h.banner(domain.ModeAuto)))
}

// root redirects to the relative banner for the current instant
func (h *handlers) root(r *stdhttp.Request) phttp.Response {
	target := fmt.Sprintf("/relative/%d", h.svc.EpochNow())
	return phttp.Redirect(stdhttp.StatusTemporaryRedirect, target)
}

// favicon serves the decorative clock banner, bypassing expression parsing
func (h *handlers) favicon(r *stdhttp.Request) phttp.Response {
	opts, err := bind.Query[domain.RenderOptions](r)
	if err != nil {
		return phttp.Error(err)
	}
	img, err := h.svc.Render(domain.ModeClock, "clock.png", opts)
	if err != nil {
		return phttp.Error(err)
	}
	return phttp.Binary(img.ContentType, img.Body)
}

// banner renders the path expression under the given mode
func (h *handlers) banner(mode domain.Mode) func(*stdhttp.Request) phttp.Response {
	return func(r *stdhttp.Request) phttp.Response {
		opts, err := bind.Query[domain.RenderOptions](r)
		if err != nil {
			return phttp.Error(err)
		}
		// chi hands back the raw match when the path carried escapes
		expr := chi.URLParam(r, "expr")
		if dec, decErr := url.PathUnescape(expr); decErr == nil {
			expr = dec
		}
		img, err := h.svc.Render(mode, expr, opts)
		if err != nil {
			return phttp.Error(err)
		}
		return phttp.Binary(img.ContentType, img.Body)
	}
}
