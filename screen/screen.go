// Package screen describes the logical canvas shapes of the 0.96" Display FS
// panel and how they relate to the physical shape the controller scans out.
//
// The controller RAM is always addressed as an 80x160 (narrow, long) frame.
// Text can be laid out either on that shape directly (Portrait) or on its
// transpose (Landscape), in which case the pixel encoder rotates the canvas
// by 90° before it goes on the wire.
package screen

import (
	"fmt"
	"image"
	"strings"
)

// Physical shape of the panel, independent of the logical orientation.
const (
	PhysicalWidth  = 80
	PhysicalHeight = 160
)

// Orientation selects the logical canvas shape.
//
// The zero value is Landscape.
type Orientation uint8

const (
	Landscape Orientation = iota // 160x80, rotated on encode
	Portrait                     // 80x160, same as the physical shape
)

// Width returns the logical canvas width in pixels.
func (o Orientation) Width() int {
	if o == Portrait {
		return PhysicalWidth
	}
	return PhysicalHeight
}

// Height returns the logical canvas height in pixels.
func (o Orientation) Height() int {
	if o == Portrait {
		return PhysicalHeight
	}
	return PhysicalWidth
}

// Bounds returns the logical canvas rectangle, anchored at the origin.
func (o Orientation) Bounds() image.Rectangle {
	return image.Rect(0, 0, o.Width(), o.Height())
}

// Rotated reports whether the canvas is the transpose of the physical shape.
func (o Orientation) Rotated() bool {
	return o != Portrait
}

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// ParseOrientation parses "landscape" or "portrait" (case insensitive, also
// accepting the single letter forms "l" and "p").
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "landscape", "l", "":
		return Landscape, nil
	case "portrait", "p":
		return Portrait, nil
	}
	return Landscape, fmt.Errorf("screen: unknown orientation %q", s)
}

// PayloadSize is the number of bytes of one full frame of 16-bit pixels.
// It does not depend on the logical orientation.
const PayloadSize = PhysicalWidth * PhysicalHeight * 2
