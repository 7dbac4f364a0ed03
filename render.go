package displayfs

import (
	"github.com/flavioheleno/displayfs/glyph"
	"github.com/flavioheleno/displayfs/layout"
	"github.com/flavioheleno/displayfs/raster"
	"github.com/flavioheleno/displayfs/rgb565"
	"github.com/flavioheleno/displayfs/screen"
	"golang.org/x/text/unicode/norm"
)

// Renderer turns text into encoded frames without touching a transport.
// Dev uses one internally; it is also useful for previews.
type Renderer struct {
	o      screen.Orientation
	glyphs *glyph.Provider
	engine *layout.Engine
	raster *raster.Rasterizer
}

// NewRenderer returns a Renderer for o. A nil p uses glyph.MustDefault()
// and a nil lo uses layout.DefaultOptions.
func NewRenderer(o screen.Orientation, p *glyph.Provider, lo *layout.Options) *Renderer {
	if p == nil {
		p = glyph.MustDefault()
	}
	return &Renderer{
		o:      o,
		glyphs: p,
		engine: layout.New(p, o, lo),
		raster: raster.New(p),
	}
}

// Engine returns the layout engine.
func (r *Renderer) Engine() *layout.Engine {
	return r.engine
}

// Render wraps and paginates text at size, or at the auto-fit size when
// size <= 0, and returns the size used with one frame per page. Text that
// produces no page renders as a single blank frame.
//
// Text is normalized to NFC first so combining sequences with a precomposed
// form are drawn as one glyph.
func (r *Renderer) Render(text string, size float64) (float64, []*rgb565.Frame) {
	text = norm.NFC.String(text)
	if size <= 0 {
		size = r.engine.AutoFitSize(text)
	}

	pages := r.engine.Pages(text, size)
	if len(pages) == 0 {
		return size, []*rgb565.Frame{rgb565.NewFrame(r.o)}
	}

	frames := make([]*rgb565.Frame, len(pages))
	for i, p := range pages {
		img := r.raster.Draw(p, size, r.o)
		// Encode always yields a full payload, so FromPayload cannot fail.
		frames[i], _ = rgb565.FromPayload(rgb565.Encode(img, r.o), r.o)
		Logger().Debug("displayfs: page rendered",
			"page", i+1, "pages", len(pages), "size", size, "lines", len(p))
	}
	return size, frames
}
