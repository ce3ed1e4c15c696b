// Package render turns display text into banner images
package render

import (
	"bytes"
	"embed"
	"html"
	"text/template"

	perr "timebanner/internal/platform/errors"
)

// Banner geometry shared by the SVG and PNG paths
const (
	bannerWidth  = 400
	bannerHeight = 120
	fontSize     = 24
)

//go:embed templates/*.svg
var templateFS embed.FS

// svgData is what the template sees. Text is pre-escaped
type svgData struct {
	Width       int
	Height      int
	InnerWidth  int
	InnerHeight int
	FontSize    int
	Text        string
}

// SVG renders banners from the embedded SVG templates
type SVG struct {
	tpl *template.Template
}

// NewSVG parses the embedded templates once
func NewSVG() (*SVG, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.svg")
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeRender, "parse banner templates")
	}
	return &SVG{tpl: tpl}, nil
}

// Render fills the basic banner template with text
func (s *SVG) Render(text string) ([]byte, error) {
	var buf bytes.Buffer
	data := svgData{
		Width:       bannerWidth,
		Height:      bannerHeight,
		InnerWidth:  bannerWidth - 8,
		InnerHeight: bannerHeight - 8,
		FontSize:    fontSize,
		Text:        html.EscapeString(text),
	}
	if err := s.tpl.ExecuteTemplate(&buf, "basic.svg", data); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeRender, "execute banner template")
	}
	return buf.Bytes(), nil
}
