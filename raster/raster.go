// Package raster draws pages of text onto a canvas the size of the panel.
package raster

import (
	"image"
	"image/color"

	"github.com/flavioheleno/displayfs/glyph"
	"github.com/flavioheleno/displayfs/layout"
	"github.com/flavioheleno/displayfs/screen"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// Foreground and Background are the text and canvas colors.
var (
	Foreground = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Background = color.RGBA{0x00, 0x00, 0x00, 0xFF}
)

// Rasterizer draws text with the glyphs of one font.
type Rasterizer struct {
	glyphs *glyph.Provider
}

// New returns a Rasterizer. p can be nil to use glyph.MustDefault().
func New(p *glyph.Provider) *Rasterizer {
	if p == nil {
		p = glyph.MustDefault()
	}
	return &Rasterizer{glyphs: p}
}

// Blank returns a canvas for o filled with Background.
func Blank(o screen.Orientation) *image.RGBA {
	img := image.NewRGBA(o.Bounds())
	draw.Draw(img, img.Rect, image.NewUniform(Background), image.Point{}, draw.Src)
	return img
}

// Draw renders page at size on a fresh canvas for o.
//
// The block of lines is centred vertically and each line horizontally,
// both clamped to the top left edge. Glyphs are placed using the summed
// advances of the metrics provider, without kerning. Anything falling off
// the canvas is clipped.
func (r *Rasterizer) Draw(page layout.Page, size float64, o screen.Orientation) *image.RGBA {
	img := Blank(o)
	if len(page) == 0 {
		return img
	}

	face, err := r.glyphs.Face(size)
	if err != nil {
		return img
	}
	defer face.Close()

	m := r.glyphs.Metrics(size)
	lh := m.LineHeight()
	startY := max(0, (o.Height()-lh*len(page))/2)
	fg := image.NewUniform(Foreground)

	for i, line := range page {
		x := max(0, (o.Width()-m.Width(line))/2)
		y := startY + i*lh

		dot := fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + m.Ascent())}
		for _, c := range line {
			dr, mask, mp, _, ok := face.Glyph(dot, c)
			if ok {
				draw.DrawMask(img, dr, fg, image.Point{}, mask, mp, draw.Over)
			}
			dot.X += m.Advance(c)
		}
	}
	return img
}
