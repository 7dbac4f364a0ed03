// Package preview prints rendered frames to a terminal.
//
// Each character cell shows two vertically stacked pixels using the upper
// half block, so a 160×80 canvas takes 160 columns by 40 rows.
package preview

import (
	"bufio"
	"image"
	"image/color"
	"io"

	"github.com/muesli/termenv"
)

const (
	upper = "▀"
	lower = "▄"
	full  = "█"
	empty = " "
)

// Render writes img to w using profile p. With termenv.Ascii no escape
// sequences are emitted and pixels are thresholded to on or off.
func Render(w io.Writer, img image.Image, p termenv.Profile) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.At(x, y)
			bottom := color.Color(color.Black)
			if y+1 < b.Max.Y {
				bottom = img.At(x, y+1)
			}
			if _, err := bw.WriteString(cell(p, top, bottom)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func cell(p termenv.Profile, top, bottom color.Color) string {
	if p == termenv.Ascii {
		switch t, b := lit(top), lit(bottom); {
		case t && b:
			return full
		case t:
			return upper
		case b:
			return lower
		default:
			return empty
		}
	}
	return p.String(upper).
		Foreground(p.FromColor(top)).
		Background(p.FromColor(bottom)).
		String()
}

func lit(c color.Color) bool {
	g := color.GrayModel.Convert(c).(color.Gray)
	return g.Y >= 0x80
}
