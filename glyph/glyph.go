// Package glyph measures text set in the embedded display font.
//
// Sizes are expressed in pixels per em; the font is always used at 72 DPI so
// one point equals one pixel on the panel.
package glyph

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Provider hands out Metrics for a parsed font. It is safe for concurrent
// use; Metrics are computed once per size and shared.
type Provider struct {
	font *opentype.Font
	name string

	mu    sync.Mutex
	sizes map[fixed.Int26_6]*Metrics
}

// NewProvider parses an OpenType/TrueType font. Fonts whose vertical
// metrics cannot be read are rejected.
func NewProvider(data []byte) (*Provider, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}
	var buf sfnt.Buffer
	if _, err := f.Metrics(&buf, fixed.I(int(f.UnitsPerEm())), font.HintingNone); err != nil {
		return nil, fmt.Errorf("glyph: failed to read font metrics: %w", err)
	}
	name, err := f.Name(nil, sfnt.NameIDFull)
	if err != nil {
		name = "unknown"
	}
	return &Provider{
		font:  f,
		name:  name,
		sizes: make(map[fixed.Int26_6]*Metrics),
	}, nil
}

var (
	defaultOnce     sync.Once
	defaultProvider *Provider
)

// MustDefault returns the Provider for the embedded Go Regular font.
//
// The font is parsed on first use. A parse failure leaves nothing sensible
// to lay out, so it panics instead of returning a fallback metric.
func MustDefault() *Provider {
	defaultOnce.Do(func() {
		p, err := NewProvider(goregular.TTF)
		if err != nil {
			panic(err)
		}
		defaultProvider = p
	})
	return defaultProvider
}

// Name returns the full name recorded in the font.
func (p *Provider) Name() string {
	return p.name
}

// Metrics returns the metrics of the font at size pixels per em.
func (p *Provider) Metrics(size float64) *Metrics {
	ppem := fixed.Int26_6(size * 64)

	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := p.sizes[ppem]; ok {
		return m
	}
	m := newMetrics(p.font, size, ppem)
	if len(p.sizes) >= maxCachedSizes {
		// Auto-fit probes many fractional sizes; start over rather than
		// grow without bound.
		clear(p.sizes)
	}
	p.sizes[ppem] = m
	return m
}

const maxCachedSizes = 64

// Measure returns the width of text, summing per-rune advances, and the
// line height at size. Line breaks are ignored; callers split first.
func (p *Provider) Measure(text string, size float64) (width, height int) {
	m := p.Metrics(size)
	return m.Width(text), m.LineHeight()
}

// MeasureMultiline splits text into lines and returns the widest line and
// the height of the whole block. Empty text measures (0, 0).
func (p *Provider) MeasureMultiline(text string, size float64) (width, height int) {
	lines := SplitLines(text)
	if len(lines) == 0 {
		return 0, 0
	}
	m := p.Metrics(size)
	for _, l := range lines {
		if w := m.Width(l); w > width {
			width = w
		}
	}
	return width, m.LineHeight() * len(lines)
}

// LineHeight returns the line height at size.
func (p *Provider) LineHeight(size float64) int {
	return p.Metrics(size).LineHeight()
}

// Advance returns the horizontal advance of r at size, in pixels.
func (p *Provider) Advance(r rune, size float64) float64 {
	a := p.Metrics(size).Advance(r)
	return float64(a) / 64
}

// Face returns a new font.Face for drawing at size. Faces are not safe for
// concurrent use, so every caller gets its own.
func (p *Provider) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to create face at %.1f: %w", size, err)
	}
	return face, nil
}

// SplitLines splits text on '\n', dropping a trailing "\r" from each line
// and ignoring one final line break. Empty text yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
