// Package domain holds the banner service types shared by handlers and service
package domain

import (
	"strings"

	perr "timebanner/internal/platform/errors"
)

// OutputFormat is the image format a request asked for
type OutputFormat int

// Supported output formats
const (
	FormatSVG OutputFormat = iota
	FormatPNG
)

// ContentType returns the MIME type for the format
func (f OutputFormat) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// ParseFormat maps a path extension to an output format
func ParseFormat(ext string) (OutputFormat, error) {
	switch ext {
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	}
	return FormatSVG, perr.Parsef("unsupported image extension %q, want svg or png", ext)
}

// Mode selects how the expression is interpreted for display
type Mode int

// Render modes, Auto lets the resolver pick the display intent
const (
	ModeAuto Mode = iota
	ModeRelative
	ModeAbsolute
	ModeClock
)

func (m Mode) String() string {
	switch m {
	case ModeRelative:
		return "relative"
	case ModeAbsolute:
		return "absolute"
	case ModeClock:
		return "clock"
	default:
		return "auto"
	}
}

// RenderOptions are the per-request query overrides
type RenderOptions struct {
	Order  string `query:"order" validate:"omitempty,oneof=ymd mdy dmy"`
	Strict bool   `query:"strict"`
	Scale  int    `query:"scale" validate:"omitempty,min=1,max=4"`
}

// Image is a rendered banner ready to write to the wire
type Image struct {
	Body        []byte
	ContentType string
}

// SplitExtension splits a path expression on its last '.' into expression
// and extension. Expressions may legitimately contain dots as date
// separators, so only a known image extension is split off. A missing
// extension defaults to svg
func SplitExtension(path string) (expr, ext string) {
	idx := strings.LastIndexByte(path, '.')
	if idx <= 0 {
		return path, "svg"
	}
	switch suffix := path[idx+1:]; suffix {
	case "svg", "png", "gif", "jpg", "jpeg", "ico", "webp", "bmp", "tiff":
		// image-looking suffixes split off, unsupported ones fail later in
		// ParseFormat with a clear message. Uppercase zone abbreviations
		// after a '.' separator are left alone
		return path[:idx], suffix
	}
	return path, "svg"
}
