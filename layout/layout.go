// Package layout breaks text into lines and screenfuls for a fixed canvas.
//
// An Engine is bound to one Measurer and one orientation. It word-wraps text
// greedily, splits the lines into pages of at most MaxLines lines and can
// search for the largest size at which a block of text fits the canvas.
package layout

import (
	"strings"

	"github.com/flavioheleno/displayfs/screen"
	"golang.org/x/image/math/fixed"
)

// Measurer reports text extents in whole pixels. glyph.Provider implements
// it; tests use fixed-advance fakes.
type Measurer interface {
	// Measure returns the width of a single line and the line height.
	Measure(text string, size float64) (width, height int)
	// MeasureMultiline returns the widest line and total block height,
	// treating existing line breaks as fixed.
	MeasureMultiline(text string, size float64) (width, height int)
	// LineHeight returns the height of one line at size.
	LineHeight(size float64) int
}

// Options bounds the auto-fit search and reserves padding around the text.
type Options struct {
	MinSize float64 // Smallest size auto-fit returns (default: 8)
	MaxSize float64 // Largest size auto-fit considers (default: 72)
	HPad    int     // Horizontal padding reserved by auto-fit (default: 8; negative for none)
	VPad    int     // Vertical padding reserved by auto-fit (default: 4; negative for none)
}

// DefaultOptions are used when New receives nil.
var DefaultOptions = Options{MinSize: 8, MaxSize: 72, HPad: 8, VPad: 4}

// Page is one screenful of lines.
type Page []string

// String joins the lines with line breaks, the form the rasterizer draws.
func (p Page) String() string {
	return strings.Join(p, "\n")
}

// Engine lays out text for one orientation.
type Engine struct {
	m    Measurer
	o    screen.Orientation
	opts Options
}

// New returns an Engine. opts can be nil to use DefaultOptions; zero fields
// take their default and negative padding means no padding.
func New(m Measurer, o screen.Orientation, opts *Options) *Engine {
	e := &Engine{m: m, o: o, opts: DefaultOptions}
	if opts != nil {
		if opts.MinSize > 0 {
			e.opts.MinSize = opts.MinSize
		}
		if opts.MaxSize > 0 {
			e.opts.MaxSize = opts.MaxSize
		}
		if opts.HPad != 0 {
			e.opts.HPad = max(opts.HPad, 0)
		}
		if opts.VPad != 0 {
			e.opts.VPad = max(opts.VPad, 0)
		}
	}
	if e.opts.MaxSize < e.opts.MinSize {
		e.opts.MaxSize = e.opts.MinSize
	}
	return e
}

// Orientation returns the orientation the engine lays out for.
func (e *Engine) Orientation() screen.Orientation { return e.o }

// Options returns the effective options.
func (e *Engine) Options() Options { return e.opts }

// fitTolerance is the auto-fit search resolution, half a size unit.
const fitTolerance = fixed.Int26_6(32)

// AutoFitSize returns the largest size in [MinSize, MaxSize], to within half
// a unit, at which text fits the canvas minus padding. Line breaks already in
// text are kept; the text is not re-wrapped or normalized. Empty text
// returns MinSize, as does text that does not fit even at MinSize.
//
// The search runs on 26.6 fixed point sizes so the result is the same on
// every platform.
func (e *Engine) AutoFitSize(text string) float64 {
	if text == "" {
		return e.opts.MinSize
	}

	maxW := e.o.Width() - e.opts.HPad
	maxH := e.o.Height() - e.opts.VPad

	low := fixed.Int26_6(e.opts.MinSize * 64)
	high := fixed.Int26_6(e.opts.MaxSize * 64)
	for high-low > fitTolerance {
		mid := (low + high) / 2
		w, h := e.m.MeasureMultiline(text, float64(mid)/64)
		if w <= maxW && h <= maxH {
			low = mid
		} else {
			high = mid
		}
	}
	return float64(low) / 64
}

// MaxLines returns how many lines of the given size fit on the canvas.
func (e *Engine) MaxLines(size float64) int {
	lh := e.m.LineHeight(size)
	if lh <= 0 {
		return 0
	}
	return e.o.Height() / lh
}

// MaxCharsPerLine estimates how many characters fit on one line, using the
// advance of 'x' as the average character width.
func (e *Engine) MaxCharsPerLine(size float64) int {
	w, _ := e.m.Measure("x", size)
	if w <= 0 {
		return 0
	}
	return e.o.Width() / w
}

// Pages wraps text and splits it into pages. It returns nil when text is
// empty or not even one line fits the canvas.
func (e *Engine) Pages(text string, size float64) []Page {
	n := e.MaxLines(size)
	if n == 0 {
		return nil
	}
	return Paginate(e.Wrap(text, size), n)
}

// Paginate splits lines into consecutive pages of at most maxLines lines.
// The last page may be shorter. No lines, or maxLines < 1, yield no pages.
func Paginate(lines []string, maxLines int) []Page {
	if len(lines) == 0 || maxLines < 1 {
		return nil
	}
	n := len(lines) / maxLines
	if len(lines)%maxLines != 0 {
		n++
	}
	pages := make([]Page, 0, n)
	for len(lines) > 0 {
		n := min(maxLines, len(lines))
		pages = append(pages, Page(lines[:n:n]))
		lines = lines[n:]
	}
	return pages
}
