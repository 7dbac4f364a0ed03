package rgb565

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"

	"github.com/flavioheleno/displayfs/screen"
)

// Color is one 16-bit pixel: 5 bits red, 6 bits green, 5 bits blue.
type Color uint16

// Pack packs 8-bit channels, dropping the low bits of each.
func Pack(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGBA converts the packed color to standard RGBA. Channels are widened by
// replicating their top bits, so 0x1F becomes 0xFF.
func (c Color) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	r = (r5<<3 | r5>>2) * 0x101
	g = (g6<<2 | g6>>4) * 0x101
	b = (b5<<3 | b5>>2) * 0x101
	return r, g, b, 0xFFFF
}

// toRGB565 converts any color.Color to Color. Alpha is ignored beyond its
// premultiplication into the channels.
func toRGB565(c color.Color) color.Color {
	if p, ok := c.(Color); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts colors to Color.
var Model = color.ModelFunc(toRGB565)

// ErrPayloadSize is returned when a payload is not exactly one full frame.
var ErrPayloadSize = errors.New("rgb565: payload must be exactly one frame")

// Frame is an encoded payload viewed as the logical canvas it came from.
// Pix holds the bytes in physical scan order, ready for the wire.
type Frame struct {
	Pix         []byte
	Orientation screen.Orientation
	Rect        image.Rectangle
}

// NewFrame returns a black frame for the orientation.
func NewFrame(o screen.Orientation) *Frame {
	return &Frame{
		Pix:         make([]byte, screen.PayloadSize),
		Orientation: o,
		Rect:        o.Bounds(),
	}
}

// FromPayload wraps an encoded payload without copying it.
func FromPayload(pix []byte, o screen.Orientation) (*Frame, error) {
	if len(pix) != screen.PayloadSize {
		return nil, ErrPayloadSize
	}
	return &Frame{Pix: pix, Orientation: o, Rect: o.Bounds()}, nil
}

// ColorModel returns the color model of the frame.
func (f *Frame) ColorModel() color.Model {
	return Model
}

// Bounds returns the logical bounds.
func (f *Frame) Bounds() image.Rectangle {
	return f.Rect
}

// At returns the color of the logical pixel at (x, y).
func (f *Frame) At(x, y int) color.Color {
	return f.RGB565At(x, y)
}

// RGB565At returns the packed color of the logical pixel at (x, y), or
// black outside the frame.
func (f *Frame) RGB565At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(f.Rect)) {
		return 0
	}
	i := f.pixOffset(x, y)
	return Color(binary.LittleEndian.Uint16(f.Pix[i:]))
}

// Set sets the logical pixel at (x, y).
func (f *Frame) Set(x, y int, c color.Color) {
	f.SetRGB565(x, y, Model.Convert(c).(Color))
}

// SetRGB565 sets the logical pixel at (x, y) without color conversion.
func (f *Frame) SetRGB565(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(f.Rect)) {
		return
	}
	i := f.pixOffset(x, y)
	binary.LittleEndian.PutUint16(f.Pix[i:], uint16(c))
}

// pixOffset returns the byte offset of logical pixel (x, y) in Pix.
// Portrait: physical (row, col) = (y, x).
// Landscape: physical (row, col) = (x, 79-y), the inverse of Encode.
func (f *Frame) pixOffset(x, y int) int {
	x -= f.Rect.Min.X
	y -= f.Rect.Min.Y
	py, px := y, x
	if f.Orientation.Rotated() {
		py, px = x, screen.PhysicalWidth-1-y
	}
	return (py*screen.PhysicalWidth + px) * 2
}

// Encode converts img to a payload of screen.PayloadSize bytes in physical
// scan order. The canvas starts at img.Bounds().Min; pixels outside img are
// black.
func Encode(img image.Image, o screen.Orientation) []byte {
	if f, ok := img.(*Frame); ok && f.Orientation == o && f.Rect == o.Bounds() {
		return append([]byte(nil), f.Pix...)
	}

	out := make([]byte, 0, screen.PayloadSize)
	origin := img.Bounds().Min
	rgba, _ := img.(*image.RGBA)

	for py := 0; py < screen.PhysicalHeight; py++ {
		for px := 0; px < screen.PhysicalWidth; px++ {
			lx, ly := px, py
			if o.Rotated() {
				lx, ly = py, screen.PhysicalWidth-1-px
			}
			x, y := origin.X+lx, origin.Y+ly

			var c Color
			if rgba != nil {
				p := rgba.RGBAAt(x, y)
				c = Pack(p.R, p.G, p.B)
			} else {
				c = Model.Convert(img.At(x, y)).(Color)
			}
			out = binary.LittleEndian.AppendUint16(out, uint16(c))
		}
	}
	return out
}
