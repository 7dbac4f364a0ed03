package displayfs

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/flavioheleno/displayfs/glyph"
	"github.com/flavioheleno/displayfs/layout"
	"github.com/flavioheleno/displayfs/raster"
	"github.com/flavioheleno/displayfs/rgb565"
	"github.com/flavioheleno/displayfs/screen"
	"golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"
)

// Opts is the configuration for the display.
type Opts struct {
	// Logical canvas shape (default: Landscape)
	Orientation screen.Orientation

	// Wait after each frame for the panel to apply it (default: 100ms).
	// Negative disables the wait.
	Settle time.Duration

	// Font metrics (default: glyph.MustDefault())
	Glyphs *glyph.Provider

	// Auto-fit bounds and padding (default: layout.DefaultOptions)
	Layout *layout.Options
}

// TextOpts controls DisplayText.
type TextOpts struct {
	Size      float64       // Text size; 0 picks the largest size that fits
	PageDelay time.Duration // Pause between pages, on top of the settle delay
}

// Dev is the device handle for a Display FS panel.
type Dev struct {
	t Transport
	r *Renderer

	settle time.Duration
	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// New returns a Dev streaming frames over t.
//
// opts can be nil to use defaults.
func New(t Transport, opts *Opts) (*Dev, error) {
	if t == nil {
		return nil, errors.New("displayfs: transport is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	if opts.Orientation != screen.Landscape && opts.Orientation != screen.Portrait {
		return nil, fmt.Errorf("displayfs: invalid orientation %v", opts.Orientation)
	}

	settle := opts.Settle
	switch {
	case settle == 0:
		settle = DefaultSettle
	case settle < 0:
		settle = 0
	}

	return &Dev{
		t:      t,
		r:      NewRenderer(opts.Orientation, opts.Glyphs, opts.Layout),
		settle: settle,
	}, nil
}

// Orientation returns the logical canvas shape.
func (d *Dev) Orientation() screen.Orientation {
	return d.r.o
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the logical canvas bounds.
func (d *Dev) Bounds() image.Rectangle {
	return d.r.o.Bounds()
}

// Write sends a payload already encoded in physical scan order. It must be
// exactly screen.PayloadSize bytes.
func (d *Dev) Write(payload []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(payload) != screen.PayloadSize {
		return 0, ErrPayloadSize
	}
	if err := d.send(payload); err != nil {
		return 0, err
	}
	return len(payload), nil
}

// Draw draws src onto the panel. The dst rectangle is in logical canvas
// coordinates and src is aligned with sp at dst.Min. The panel has no
// partial update, so the whole frame is sent and everything outside dst is
// cleared to the background.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	bounds := d.Bounds()
	dst = dst.Intersect(bounds)
	if dst.Empty() {
		return nil
	}

	// Fast path: a frame already encoded for this orientation
	if f, ok := src.(*rgb565.Frame); ok {
		if dst == bounds && sp == (image.Point{}) && f.Rect == bounds && f.Orientation == d.r.o {
			return d.send(f.Pix)
		}
	}

	canvas := raster.Blank(d.r.o)
	draw.Draw(canvas, dst, src, sp, draw.Src)
	return d.send(rgb565.Encode(canvas, d.r.o))
}

// DisplayText lays out text and shows it one page at a time. Pages after the
// first wait o.PageDelay before being sent. Empty text clears the panel.
//
// o can be nil to auto-fit with no page delay.
func (d *Dev) DisplayText(text string, o *TextOpts) error {
	if d.halted {
		return ErrHalted
	}
	if o == nil {
		o = &TextOpts{}
	}

	_, frames := d.r.Render(text, o.Size)
	for i, f := range frames {
		if i > 0 && o.PageDelay > 0 {
			sleep(o.PageDelay)
		}
		if err := d.send(f.Pix); err != nil {
			return fmt.Errorf("displayfs: page %d of %d: %w", i+1, len(frames), err)
		}
	}
	return nil
}

// Halt blanks the panel. After Halt every drawing call fails with
// ErrHalted.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.send(rgb565.NewFrame(d.r.o).Pix)
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("displayfs.Dev{%s %dx%d}", d.r.o, d.r.o.Width(), d.r.o.Height())
}

func (d *Dev) send(payload []byte) error {
	return SendFrame(d.t, payload, d.settle)
}
