package glyph

import (
	"errors"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyFont is returned when no font data is supplied.
var ErrEmptyFont = errors.New("glyph: empty font data")

// Metrics are the measurements of one font at one size. They never change
// once built.
type Metrics struct {
	font *sfnt.Font
	size float64
	ppem fixed.Int26_6

	ascent     int
	lineHeight int

	// Advances of the printable ASCII range, precomputed.
	ascii [0x80]fixed.Int26_6
}

var bufPool = sync.Pool{New: func() any { return new(sfnt.Buffer) }}

func newMetrics(f *sfnt.Font, size float64, ppem fixed.Int26_6) *Metrics {
	m := &Metrics{font: f, size: size, ppem: ppem}

	buf := bufPool.Get().(*sfnt.Buffer)
	defer bufPool.Put(buf)

	fm, err := f.Metrics(buf, ppem, font.HintingNone)
	if err != nil {
		fm = emBox(ppem)
	}
	m.ascent = fm.Ascent.Ceil()
	m.lineHeight = max((fm.Ascent + fm.Descent).Ceil(), 1)
	for r := rune(0x20); r < 0x7f; r++ {
		m.ascii[r] = m.advance(buf, r)
	}
	return m
}

// emBox approximates vertical metrics from the em square alone, with the
// usual 4:1 split between ascent and descent.
func emBox(ppem fixed.Int26_6) font.Metrics {
	return font.Metrics{
		Height:  ppem,
		Ascent:  ppem * 4 / 5,
		Descent: ppem - ppem*4/5,
	}
}

func (m *Metrics) advance(buf *sfnt.Buffer, r rune) fixed.Int26_6 {
	idx, err := m.font.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	a, err := m.font.GlyphAdvance(buf, idx, m.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return a
}

// Size returns the size the metrics were computed for.
func (m *Metrics) Size() float64 { return m.size }

// Ascent returns the distance from the top of a line to its baseline.
func (m *Metrics) Ascent() int { return m.ascent }

// LineHeight returns the height of one line of text, ascent plus descent.
func (m *Metrics) LineHeight() int { return m.lineHeight }

// Advance returns the advance of r in 26.6 fixed point pixels. Runes
// missing from the font advance like the font's .notdef glyph.
func (m *Metrics) Advance(r rune) fixed.Int26_6 {
	if r >= 0x20 && r < 0x7f {
		return m.ascii[r]
	}
	buf := bufPool.Get().(*sfnt.Buffer)
	defer bufPool.Put(buf)
	return m.advance(buf, r)
}

// Width returns the sum of the advances of the runes of s, rounded up to
// whole pixels. Line breaks contribute nothing.
func (m *Metrics) Width(s string) int {
	var w fixed.Int26_6
	for _, r := range s {
		if r == '\n' || r == '\r' {
			continue
		}
		w += m.Advance(r)
	}
	return w.Ceil()
}
