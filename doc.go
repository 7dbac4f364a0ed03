// Package displayfs drives a WeAct Display FS 160×80 USB panel over its
// serial link.
//
// The panel is a physical 80×160 RGB565 matrix behind a CH340-style USB
// serial bridge. It has no font engine and no partial update: every change is
// a full frame made of a 10-byte set-bitmap header followed by 25600 bytes of
// little-endian RGB565 pixels. This package lays out text, rasterizes it and
// streams the frames. It implements the display.Drawer interface from
// periph.io.
//
// # Display Characteristics
//
// - 16-bit RGB565 color, little-endian on the wire
// - Physical matrix of 80 columns by 160 rows
// - Logical canvas of 160×80 (Landscape, the default) or 80×160 (Portrait)
// - Landscape frames are rotated 90° by the encoder, not by the panel
// - One full frame per update, written in 320-byte chunks
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/flavioheleno/displayfs"
//		"github.com/flavioheleno/displayfs/internal/serialport"
//	)
//
//	func main() {
//		name, err := serialport.Find()
//		if err != nil {
//			log.Fatal(err)
//		}
//		port, err := serialport.Open(name, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer port.Close()
//
//		dev, err := displayfs.New(port, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		// Auto-fit the text to the canvas
//		if err := dev.DisplayText("Hello, world", nil); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Text Layout
//
// DisplayText wraps words greedily to the canvas width minus padding. Words
// wider than a line are truncated at a grapheme cluster boundary. When the
// lines do not fit vertically they are split into pages which are shown one
// after the other:
//
//	dev.DisplayText(longText, &displayfs.TextOpts{
//		Size:      14,
//		PageDelay: 2 * time.Second,
//	})
//
// A Size of 0 picks the largest size between layout.Options.MinSize and
// MaxSize where the text still fits on one page, if any.
//
// # Drawing Images
//
// Draw accepts any image.Image in logical canvas coordinates. An
// *rgb565.Frame built for the same orientation is sent without conversion:
//
//	f := rgb565.NewFrame(dev.Orientation())
//	f.SetRGB565(0, 0, rgb565.Pack(0xFF, 0, 0))
//	dev.Draw(dev.Bounds(), f, image.Point{})
//
// Write sends a payload that is already in physical scan order.
//
// # Transports
//
// Anything implementing Transport can carry frames. ConnTransport adapts a
// periph.io conn.Conn, which is how the tests record the byte stream with
// conntest.Record.
//
// # Logging
//
// Nothing is logged by default. SetLogger installs a *slog.Logger which
// receives frame and page events at debug level.
package displayfs
