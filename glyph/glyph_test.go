package glyph

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func TestNewProviderInvalid(t *testing.T) {
	if _, err := NewProvider(nil); !errors.Is(err, ErrEmptyFont) {
		t.Errorf("NewProvider(nil) error = %v, want ErrEmptyFont", err)
	}
	if _, err := NewProvider([]byte("definitely not a font")); err == nil {
		t.Error("NewProvider with garbage should fail")
	}
}

func TestLineHeightNeverZero(t *testing.T) {
	p, err := NewProvider(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range []float64{0.1, 1, 8, 14, 72, 400} {
		if lh := p.LineHeight(size); lh < 1 {
			t.Errorf("LineHeight(%v) = %d, want at least 1", size, lh)
		}
	}
}

func TestEmBox(t *testing.T) {
	tests := []struct {
		ppem        fixed.Int26_6
		wantAscent  int
		wantLineHgt int
	}{
		{fixed.I(20), 16, 20},
		{fixed.I(14), 12, 14},
		{fixed.I(1), 1, 1},
	}
	for _, tt := range tests {
		fm := emBox(tt.ppem)
		if got := fm.Ascent.Ceil(); got != tt.wantAscent {
			t.Errorf("emBox(%v) ascent = %d, want %d", tt.ppem, got, tt.wantAscent)
		}
		if got := (fm.Ascent + fm.Descent).Ceil(); got != tt.wantLineHgt {
			t.Errorf("emBox(%v) line height = %d, want %d", tt.ppem, got, tt.wantLineHgt)
		}
	}
}

func TestMustDefault(t *testing.T) {
	p := MustDefault()
	if p == nil {
		t.Fatal("MustDefault() returned nil")
	}
	if p != MustDefault() {
		t.Error("MustDefault() should return the same provider")
	}
	if p.Name() == "" {
		t.Error("Name() is empty")
	}
}

func TestMeasureSumsAdvances(t *testing.T) {
	p := MustDefault()
	m := p.Metrics(14)

	a := m.Advance('a')
	b := m.Advance('b')
	w, h := p.Measure("ab", 14)
	if want := (a + b).Ceil(); w != want {
		t.Errorf("Measure(ab) width = %d, want %d", w, want)
	}
	if h != m.LineHeight() {
		t.Errorf("Measure(ab) height = %d, want %d", h, m.LineHeight())
	}
}

func TestMeasureIgnoresLineBreaks(t *testing.T) {
	p := MustDefault()
	w1, _ := p.Measure("HelloWorld", 20)
	w2, _ := p.Measure("Hello\nWorld", 20)
	if w1 != w2 {
		t.Errorf("Measure with line break = %d, want %d", w2, w1)
	}
}

func TestMeasureHeightIndependentOfContent(t *testing.T) {
	p := MustDefault()
	_, h1 := p.Measure("", 18)
	_, h2 := p.Measure("Ágy", 18)
	if h1 != h2 || h1 <= 0 {
		t.Errorf("heights = %d, %d; want equal and positive", h1, h2)
	}
}

func TestMeasureGrowsWithSize(t *testing.T) {
	p := MustDefault()
	w1, h1 := p.Measure("Hello", 10)
	w2, h2 := p.Measure("Hello", 40)
	if w2 <= w1 || h2 <= h1 {
		t.Errorf("Measure at 40 = (%d,%d), at 10 = (%d,%d); want larger", w2, h2, w1, h1)
	}
}

func TestMeasureMultiline(t *testing.T) {
	p := MustDefault()
	lh := p.LineHeight(16)

	tests := []struct {
		name   string
		text   string
		lines  int
		widest string
	}{
		{"empty", "", 0, ""},
		{"single", "Hello", 1, "Hello"},
		{"two", "Hi\nHello", 2, "Hello"},
		{"trailing newline", "Hello\n", 1, "Hello"},
		{"blank middle", "a\n\nWWW", 3, "WWW"},
		{"crlf", "Hello\r\nHi", 2, "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := p.MeasureMultiline(tt.text, 16)
			wantW, _ := p.Measure(tt.widest, 16)
			if tt.lines == 0 {
				wantW = 0
			}
			if w != wantW {
				t.Errorf("width = %d, want %d", w, wantW)
			}
			if h != lh*tt.lines {
				t.Errorf("height = %d, want %d", h, lh*tt.lines)
			}
		})
	}
}

func TestMetricsCached(t *testing.T) {
	p := MustDefault()
	if p.Metrics(12.5) != p.Metrics(12.5) {
		t.Error("Metrics should be cached per size")
	}
	if p.Metrics(12.5) == p.Metrics(13) {
		t.Error("different sizes should not share metrics")
	}
}

func TestMetricsCacheBounded(t *testing.T) {
	p, err := NewProvider(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3*maxCachedSizes; i++ {
		p.Metrics(8 + float64(i)/4)
	}
	if n := len(p.sizes); n > maxCachedSizes {
		t.Errorf("cache holds %d sizes, want at most %d", n, maxCachedSizes)
	}
}

func TestAdvanceNonASCII(t *testing.T) {
	p := MustDefault()
	if a := p.Advance('é', 20); a <= 0 {
		t.Errorf("Advance('é') = %v, want > 0", a)
	}
	if a := p.Advance('x', 20); a <= 0 {
		t.Errorf("Advance('x') = %v, want > 0", a)
	}
}

func TestFace(t *testing.T) {
	face, err := MustDefault().Face(14)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()
	if _, ok := face.GlyphAdvance('A'); !ok {
		t.Error("face has no glyph for 'A'")
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\n", []string{"a"}},
		{"\n", []string{""}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, SplitLines(tt.in)); diff != "" {
			t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
