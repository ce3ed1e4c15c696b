package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	perr "timebanner/internal/platform/errors"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	bgColor     = color.RGBA{R: 0x1f, G: 0x24, B: 0x30, A: 0xff}
	borderColor = color.RGBA{R: 0x3b, G: 0x42, B: 0x52, A: 0xff}
	textColor   = color.RGBA{R: 0xd8, G: 0xde, B: 0xe9, A: 0xff}
)

// Raster draws banners directly onto an RGBA canvas with the embedded Go font
type Raster struct {
	face font.Face
}

// NewRaster parses the embedded font once
func NewRaster() (*Raster, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeRasterize, "parse embedded font")
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeRasterize, "build font face")
	}
	return &Raster{face: face}, nil
}

// Render draws text centered on the banner canvas and encodes it as PNG.
// scale multiplies the output dimensions, 0 or 1 keeps the base size
func (r *Raster) Render(text string, scale int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, bannerWidth, bannerHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(bgColor), image.Point{}, draw.Src)
	drawBorder(img)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: r.face,
	}
	width := d.MeasureString(text)
	metrics := r.face.Metrics()
	d.Dot = fixed.Point26_6{
		X: (fixed.I(bannerWidth) - width) / 2,
		Y: (fixed.I(bannerHeight) + metrics.Ascent - metrics.Descent) / 2,
	}
	d.DrawString(text)

	var out image.Image = img
	if scale > 1 {
		out = imaging.Resize(img, bannerWidth*scale, bannerHeight*scale, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeRasterize, "encode png")
	}
	return buf.Bytes(), nil
}

// drawBorder traces a 2px inset rectangle matching the SVG banner
func drawBorder(img *image.RGBA) {
	const inset = 4
	for x := inset; x < bannerWidth-inset; x++ {
		for _, y := range []int{inset, inset + 1, bannerHeight - inset - 2, bannerHeight - inset - 1} {
			img.Set(x, y, borderColor)
		}
	}
	for y := inset; y < bannerHeight-inset; y++ {
		for _, x := range []int{inset, inset + 1, bannerWidth - inset - 2, bannerWidth - inset - 1} {
			img.Set(x, y, borderColor)
		}
	}
}
