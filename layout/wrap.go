package layout

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap breaks text into lines no wider than the canvas at size.
//
// Explicit line breaks start new paragraphs; an empty or blank paragraph
// becomes one empty line. Words are separated by single spaces and added
// greedily. A word is only ever split when it alone is wider than the
// canvas: it is then cut to the longest prefix, in whole grapheme clusters,
// that fits, and emitted on its own line.
//
// Text is used as given; lines hold the caller's words byte for byte.
func (e *Engine) Wrap(text string, size float64) []string {
	if text == "" {
		return nil
	}

	w := &wrapper{e: e, size: size, width: e.o.Width()}
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			w.lines = append(w.lines, "")
			continue
		}
		for _, word := range words {
			w.add(word)
		}
		w.flush()
	}
	return w.lines
}

type wrapper struct {
	e     *Engine
	size  float64
	width int

	lines []string
	cur   string
}

func (w *wrapper) fits(s string) bool {
	width, _ := w.e.m.Measure(s, w.size)
	return width <= w.width
}

func (w *wrapper) add(word string) {
	if w.cur != "" {
		if candidate := w.cur + " " + word; w.fits(candidate) {
			w.cur = candidate
			return
		}
		w.flush()
	}
	if w.fits(word) {
		w.cur = word
		return
	}
	w.lines = append(w.lines, w.truncate(word))
}

func (w *wrapper) flush() {
	if w.cur != "" {
		w.lines = append(w.lines, w.cur)
		w.cur = ""
	}
}

// truncate returns the longest prefix of word, cut at a grapheme cluster
// boundary, that fits the canvas. It starts from the estimated number of
// characters per line and then moves one cluster at a time, so the work is
// bounded by the canvas width rather than the word length.
func (w *wrapper) truncate(word string) string {
	var ends []int
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		_, to := g.Positions()
		ends = append(ends, to)
	}

	n := min(max(w.e.MaxCharsPerLine(w.size), 1), len(ends))
	if w.fits(word[:ends[n-1]]) {
		for n < len(ends) && w.fits(word[:ends[n]]) {
			n++
		}
		return word[:ends[n-1]]
	}
	for n > 1 {
		n--
		if w.fits(word[:ends[n-1]]) {
			return word[:ends[n-1]]
		}
	}
	return ""
}
