// Package service orchestrates expression resolution and banner rendering
package service

import (
	"time"

	"timebanner/internal/core/temporal"
	perr "timebanner/internal/platform/errors"
	"timebanner/internal/services/banner/domain"
	"timebanner/internal/services/banner/render"

	"github.com/dustin/go-humanize"
)

// Service resolves expressions and renders them as banner images
type Service struct {
	resolver *temporal.Resolver
	svg      *render.SVG
	raster   *render.Raster
}

// New builds the service, parsing templates and the embedded font up front
func New(resolver *temporal.Resolver) (*Service, error) {
	svg, err := render.NewSVG()
	if err != nil {
		return nil, err
	}
	raster, err := render.NewRaster()
	if err != nil {
		return nil, err
	}
	return &Service{resolver: resolver, svg: svg, raster: raster}, nil
}

// Render resolves a path expression under mode and the per-request options
// and produces the banner image
func (s *Service) Render(mode domain.Mode, path string, opts domain.RenderOptions) (domain.Image, error) {
	expr, ext := domain.SplitExtension(path)
	format, err := domain.ParseFormat(ext)
	if err != nil {
		return domain.Image{}, err
	}

	v, err := s.resolve(mode, expr, opts)
	if err != nil {
		return domain.Image{}, err
	}

	text := s.displayText(v)

	var body []byte
	switch format {
	case domain.FormatPNG:
		body, err = s.raster.Render(text, opts.Scale)
	default:
		body, err = s.svg.Render(text)
	}
	if err != nil {
		return domain.Image{}, err
	}

	return domain.Image{Body: body, ContentType: format.ContentType()}, nil
}

// EpochNow returns the current instant as epoch seconds, used by the root
// redirect
func (s *Service) EpochNow() int64 {
	return s.resolver.Clock().UTC.Unix()
}

func (s *Service) resolve(mode domain.Mode, expr string, opts domain.RenderOptions) (temporal.ResolvedInstant, error) {
	if mode == domain.ModeClock {
		return s.resolver.Clock(), nil
	}

	order, err := temporal.ParseDateOrder(opts.Order)
	if err != nil {
		return temporal.ResolvedInstant{}, err
	}
	cfg := temporal.Config{Order: order, Strict: opts.Strict}

	v, err := s.resolver.ResolveWith(expr, cfg)
	if err != nil {
		return temporal.ResolvedInstant{}, perr.WithOp(err, mode.String())
	}

	// the route can force the display style without changing resolution
	switch mode {
	case domain.ModeRelative:
		v.Intent = temporal.IntentRelative
	case domain.ModeAbsolute:
		v.Intent = temporal.IntentAbsolute
	}
	return v, nil
}

// displayText formats the resolved instant per its display intent
func (s *Service) displayText(v temporal.ResolvedInstant) string {
	switch v.Intent {
	case temporal.IntentRelative:
		now := s.resolver.Clock().UTC
		return humanize.RelTime(v.UTC, now, "ago", "from now")
	case temporal.IntentClock:
		return v.UTC.Format("15:04:05") + " UTC"
	default:
		return v.UTC.Format(time.RFC3339)
	}
}
