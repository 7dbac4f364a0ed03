package layout

import (
	"strings"
	"testing"

	"github.com/flavioheleno/displayfs/glyph"
	"github.com/flavioheleno/displayfs/screen"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/unicode/norm"
)

// At size 20 the mono measurer gives 10px per rune: 16 runes per landscape
// line and 8 per portrait line.
func TestWrapMono(t *testing.T) {
	tests := []struct {
		name string
		o    screen.Orientation
		text string
		want []string
	}{
		{"empty", screen.Landscape, "", nil},
		{"single word", screen.Landscape, "Hello", []string{"Hello"}},
		{"exact fit", screen.Landscape, "0123456789abcdef", []string{"0123456789abcdef"}},
		{"greedy", screen.Landscape, "the quick brown fox jumps over", []string{"the quick brown", "fox jumps over"}},
		{"collapse spaces", screen.Landscape, "a   b\tc", []string{"a b c"}},
		{"explicit breaks", screen.Landscape, "one\ntwo", []string{"one", "two"}},
		{"blank paragraphs", screen.Landscape, "one\n\n   \ntwo", []string{"one", "", "", "two"}},
		{"trailing break", screen.Landscape, "one\n", []string{"one", ""}},
		{"only whitespace", screen.Landscape, "   ", []string{""}},
		{"portrait", screen.Portrait, "the quick brown fox", []string{"the", "quick", "brown", "fox"}},
		{"long word truncated", screen.Portrait, "supercalifragilistic ok", []string{"supercal", "ok"}},
		{"long word mid line", screen.Portrait, "ab supercalifragilistic cd", []string{"ab", "supercal", "cd"}},
		{"crlf", screen.Landscape, "one\r\ntwo", []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(monoMeasurer{}, tt.o, nil)
			got := e.Wrap(tt.text, 20)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestWrapLinesFit(t *testing.T) {
	text := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do " +
		"eiusmod tempor incididunt ut labore et dolore magna aliqua.\n\n" +
		"Pneumonoultramicroscopicsilicovolcanoconiosis is a word."

	p := glyph.MustDefault()
	for _, o := range []screen.Orientation{screen.Landscape, screen.Portrait} {
		for _, size := range []float64{8, 14, 22, 40} {
			e := New(p, o, nil)
			for _, line := range e.Wrap(text, size) {
				if w, _ := p.Measure(line, size); w > o.Width() {
					t.Errorf("%v@%v: line %q is %dpx wide, canvas %d", o, size, line, w, o.Width())
				}
			}
		}
	}
}

func TestWrapPreservesWords(t *testing.T) {
	text := "Word wrap never splits a word across lines unless that word alone " +
		"exceeds the canvas width, and keeps words in order."

	p := glyph.MustDefault()
	for _, o := range []screen.Orientation{screen.Landscape, screen.Portrait} {
		e := New(p, o, nil)
		var got []string
		for _, line := range e.Wrap(text, 14) {
			got = append(got, strings.Fields(line)...)
		}
		if diff := cmp.Diff(strings.Fields(text), got); diff != "" {
			t.Errorf("%v: words mismatch (-want +got):\n%s", o, diff)
		}
	}
}

func TestWrapKeepsDecomposedText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"decomposed accent", "cafe\u0301 ok"},
		{"decomposed across lines", strings.Repeat("re\u0301sume\u0301 ", 12)},
		{"precomposed", "caf\u00e9 ok"},
	}

	e := New(glyph.MustDefault(), screen.Landscape, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, line := range e.Wrap(tt.text, 14) {
				got = append(got, strings.Fields(line)...)
			}
			if diff := cmp.Diff(strings.Fields(tt.text), got); diff != "" {
				t.Errorf("words mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrapTruncatesLongestPrefix(t *testing.T) {
	p := glyph.MustDefault()
	e := New(p, screen.Portrait, nil)
	word := strings.Repeat("W", 40) + strings.Repeat("i", 40)

	lines := e.Wrap(word, 14)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if !strings.HasPrefix(word, line) || line == "" {
		t.Fatalf("line %q is not a prefix of the word", line)
	}
	if w, _ := p.Measure(line, 14); w > e.Orientation().Width() {
		t.Errorf("truncated line is %dpx wide", w)
	}
	longer := word[:len(line)+1]
	if w, _ := p.Measure(longer, 14); w <= e.Orientation().Width() {
		t.Errorf("prefix %q would also fit; truncation is not maximal", longer)
	}
}

func TestWrapTruncatesNarrowGlyphsBeyondEstimate(t *testing.T) {
	// 'i' is much narrower than 'x', so more of them fit than estimated.
	p := glyph.MustDefault()
	e := New(p, screen.Landscape, nil)
	word := strings.Repeat("i", 500)

	lines := e.Wrap(word, 14)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if n := len(lines[0]); n <= e.MaxCharsPerLine(14) {
		t.Errorf("kept %d runes, want more than the estimate %d", n, e.MaxCharsPerLine(14))
	}
}

func TestWrapTruncatesWholeGraphemes(t *testing.T) {
	// There is no precomposed e with dot below and acute, so even in NFC
	// each cluster is two runes.
	cluster := norm.NFC.String("e\u0323\u0301")
	word := strings.Repeat(cluster, 30)

	e := New(monoMeasurer{}, screen.Portrait, nil)
	lines := e.Wrap(word, 20)
	if diff := cmp.Diff([]string{strings.Repeat(cluster, 4)}, lines); diff != "" {
		t.Errorf("Wrap mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapOversizeGlyph(t *testing.T) {
	e := New(monoMeasurer{}, screen.Landscape, nil)
	// At size 400 a single rune is 200px wide; nothing fits.
	if diff := cmp.Diff([]string{""}, e.Wrap("x", 400)); diff != "" {
		t.Errorf("Wrap mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapPathologicalWord(t *testing.T) {
	e := New(glyph.MustDefault(), screen.Landscape, nil)
	word := strings.Repeat("m", 100000)
	lines := e.Wrap(word+" end", 14)
	if diff := cmp.Diff(2, len(lines)); diff != "" {
		t.Fatalf("line count mismatch (-want +got):\n%s", diff)
	}
	if lines[1] != "end" {
		t.Errorf("second line = %q, want %q", lines[1], "end")
	}
}
