// Package rgb565 converts images to the 16-bit color wire format of the
// Display FS panel.
//
// Each pixel is packed as 5 bits red, 6 bits green and 5 bits blue and sent
// low byte first:
//
//	bit:   15 ... 11 | 10 ...  5 | 4 ... 0
//	       R4 ... R0 | G5 ... G0 | B4 ... B0
//
//	white  0xFFFF -> FF FF
//	red    0xF800 -> 00 F8
//	green  0x07E0 -> E0 07
//	blue   0x001F -> 1F 00
//
// The controller always scans an 80x160 frame. Portrait canvases map onto it
// directly; Landscape canvases (160x80) are rotated 90° clockwise, so the
// physical pixel at row py, column px shows the logical pixel
// (x, y) = (py, 79-px).
//
// This package provides:
//
// - Color: a color.Color holding one packed pixel
// - Model: a color model converting standard Go colors to Color
// - Frame: an image.Image over an encoded payload, addressed in logical
//   coordinates
// - Encode: the conversion of any image to a payload
//
// Example usage:
//
//	img := raster.New(nil).Draw(page, 14, screen.Landscape)
//	payload := rgb565.Encode(img, screen.Landscape)
//
//	// Read the payload back as the logical image.
//	f, _ := rgb565.FromPayload(payload, screen.Landscape)
//	c := f.RGB565At(10, 20)
package rgb565
