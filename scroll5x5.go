// Package scroll5x5 drives 5×5 LED matrices with scrolling images and text.
//
// Dev multiplexes a matrix wired to 10 GPIO pins, one per row and one per
// column. Player advances any scrolling.Sequence on a timer and draws each
// frame onto a periph.io display.Drawer.
//
// See the examples for how to use this package.
package scroll5x5

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/flavioheleno/scroll5x5/image5x5"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
)

// ErrHalted is returned by every operation on a halted Dev.
var ErrHalted = errors.New("scroll5x5: halted")

// Opts is the pin configuration for a Dev.
//
// The zero polarity matches the micro:bit: a row is selected by driving it
// high and an LED in that row lights when its column is driven low.
type Opts struct {
	Rows [image5x5.Height]gpio.PinOut // Row pins, top first
	Cols [image5x5.Width]gpio.PinOut  // Column pins, left first

	RowActiveLow  bool // Rows are selected by driving them low
	ColActiveHigh bool // LEDs light when their column is driven high
}

// Dev is the device handle for a row/column multiplexed LED matrix.
//
// It is safe to call Refresh from one goroutine while another draws.
type Dev struct {
	mu sync.Mutex

	rows [image5x5.Height]gpio.PinOut
	cols [image5x5.Width]gpio.PinOut

	rowOn gpio.Level
	colOn gpio.Level

	// Latched frame and the row lit by the last Refresh (-1 for none)
	frame image5x5.Frame
	row   int

	halted bool
}

// New creates a Dev on the given pins. All LEDs are turned off.
func New(opts *Opts) (*Dev, error) {
	if opts == nil {
		return nil, errors.New("scroll5x5: pins are required")
	}
	for i, p := range opts.Rows {
		if p == nil {
			return nil, fmt.Errorf("scroll5x5: row %d pin is missing", i)
		}
	}
	for i, p := range opts.Cols {
		if p == nil {
			return nil, fmt.Errorf("scroll5x5: column %d pin is missing", i)
		}
	}

	d := &Dev{
		rows:  opts.Rows,
		cols:  opts.Cols,
		rowOn: gpio.Level(!opts.RowActiveLow),
		colOn: gpio.Level(opts.ColActiveHigh),
		row:   -1,
	}

	if err := d.off(); err != nil {
		return nil, err
	}
	return d, nil
}

// off deselects every row and column.
func (d *Dev) off() error {
	for i, p := range d.rows {
		if err := p.Out(!d.rowOn); err != nil {
			return fmt.Errorf("scroll5x5: failed to drive row %d: %w", i, err)
		}
	}
	for i, p := range d.cols {
		if err := p.Out(!d.colOn); err != nil {
			return fmt.Errorf("scroll5x5: failed to drive column %d: %w", i, err)
		}
	}
	d.row = -1
	return nil
}

// Show latches the current output of r. It is displayed row by row as
// Refresh is called. Any nonzero brightness lights the LED.
func (d *Dev) Show(r image5x5.Renderer) error {
	f := image5x5.Capture(r)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}
	d.frame = f
	return nil
}

// Frame returns the latched frame.
func (d *Dev) Frame() image5x5.Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame
}

// Row returns the row lit by the last Refresh, or -1.
func (d *Dev) Row() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.row
}

// Refresh lights the next row of the latched frame.
//
// Only one row is lit at a time; call Refresh at least 5 times per display
// period (a few hundred Hz overall) for a steady image.
func (d *Dev) Refresh() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}
	if d.row >= 0 {
		if err := d.rows[d.row].Out(!d.rowOn); err != nil {
			return fmt.Errorf("scroll5x5: failed to drive row %d: %w", d.row, err)
		}
	}

	next := (d.row + 1) % image5x5.Height
	for x, p := range d.cols {
		l := !d.colOn
		if d.frame.Lit(x, next) {
			l = d.colOn
		}
		if err := p.Out(l); err != nil {
			return fmt.Errorf("scroll5x5: failed to drive column %d: %w", x, err)
		}
	}

	if err := d.rows[next].Out(d.rowOn); err != nil {
		return fmt.Errorf("scroll5x5: failed to drive row %d: %w", next, err)
	}
	d.row = next
	return nil
}

// Clear clears the latched frame and turns every LED off.
func (d *Dev) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}
	d.frame = image5x5.Frame{}
	return d.off()
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image5x5.BrightnessModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return image5x5.Rect
}

// Draw latches src into the dst region of the display.
// It implements display.Drawer.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}

	// Clip to display bounds
	dst = dst.Intersect(image5x5.Rect)
	if dst.Empty() {
		return nil
	}

	draw.Draw(&d.frame, dst, src, sp, draw.Src)
	return nil
}

// Halt turns every LED off.
// After calling Halt, the Dev does not respond to further calls.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.halted = true
	return d.off()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("scroll5x5.Dev{%dx%d}", image5x5.Width, image5x5.Height)
}

var _ display.Drawer = (*Dev)(nil)
