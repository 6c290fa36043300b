// Package termdisplay shows a 5×5 LED matrix in a terminal.
//
// Display implements the periph.io display.Drawer interface on top of a
// tcell.Screen, so anything that can drive a real matrix can drive the
// terminal instead. Each LED is two cells wide to keep it roughly square.
// LEDs that switch off can fade out over a few frames, like the afterglow
// of a multiplexed matrix seen on camera.
package termdisplay

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/scroll5x5/image5x5"
	"github.com/fogleman/ease"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"periph.io/x/conn/v3/display"
)

// ErrHalted is returned by Draw on a halted Display.
var ErrHalted = errors.New("termdisplay: halted")

// Opts is the configuration for a Display.
type Opts struct {
	Colour string // Lit LED colour as hex (default: "#ff0000")
	Off    string // Unlit LED colour as hex (default: "#1a0000")
	Fade   int    // Draws an LED takes to fade out (default: 0, instant)
	X, Y   int    // Screen cell of the top left LED
}

// Display draws the matrix onto a tcell.Screen.
type Display struct {
	screen tcell.Screen
	on     colorful.Color
	off    colorful.Color
	fade   int
	origin image.Point

	frame image5x5.Frame
	// Per LED: displayed intensity (0-1), intensity when it went off and
	// draws since then
	level [image5x5.Height][image5x5.Width]float64
	peak  [image5x5.Height][image5x5.Width]float64
	age   [image5x5.Height][image5x5.Width]int

	halted bool
}

// New creates a Display on screen, which must already be initialized.
//
// opts can be nil to use defaults.
func New(screen tcell.Screen, opts *Opts) (*Display, error) {
	if screen == nil {
		return nil, errors.New("termdisplay: screen is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	if opts.Fade < 0 {
		return nil, errors.New("termdisplay: fade must not be negative")
	}

	on, err := parseColour(opts.Colour, "#ff0000")
	if err != nil {
		return nil, err
	}
	off, err := parseColour(opts.Off, "#1a0000")
	if err != nil {
		return nil, err
	}

	return &Display{
		screen: screen,
		on:     on,
		off:    off,
		fade:   opts.Fade,
		origin: image.Pt(opts.X, opts.Y),
	}, nil
}

func parseColour(hex, def string) (colorful.Color, error) {
	if hex == "" {
		hex = def
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("termdisplay: invalid colour %q: %w", hex, err)
	}
	return c, nil
}

// ColorModel returns the color model of the display.
func (d *Display) ColorModel() color.Model {
	return image5x5.BrightnessModel
}

// Bounds returns the image bounds of the display.
func (d *Display) Bounds() image.Rectangle {
	return image5x5.Rect
}

// Draw draws src into the dst region of the matrix and shows the result.
// It implements display.Drawer.
func (d *Display) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}
	dst = dst.Intersect(image5x5.Rect)
	if !dst.Empty() {
		draw.Draw(&d.frame, dst, src, sp, draw.Src)
	}

	d.update()
	d.paint()
	d.screen.Show()
	return nil
}

// update moves every LED one draw closer to the latched frame.
func (d *Display) update() {
	for y := 0; y < image5x5.Height; y++ {
		for x := 0; x < image5x5.Width; x++ {
			if b := d.frame[y][x]; b != 0 {
				d.level[y][x] = float64(b) / image5x5.MaxBrightness
				d.peak[y][x] = d.level[y][x]
				d.age[y][x] = 0
				continue
			}
			if d.level[y][x] == 0 {
				continue
			}
			d.age[y][x]++
			if d.age[y][x] >= d.fade {
				d.level[y][x] = 0
				continue
			}
			t := float64(d.age[y][x]) / float64(d.fade)
			d.level[y][x] = d.peak[y][x] * (1 - ease.OutQuad(t))
		}
	}
}

func (d *Display) paint() {
	for y := 0; y < image5x5.Height; y++ {
		for x := 0; x < image5x5.Width; x++ {
			r, g, b := d.Colour(x, y).Clamped().RGB255()
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			cx, cy := d.origin.X+2*x, d.origin.Y+y
			d.screen.SetContent(cx, cy, '█', nil, style)
			d.screen.SetContent(cx+1, cy, '█', nil, style)
		}
	}
}

// Level returns the displayed intensity of the LED at (x, y), from 0 to 1.
func (d *Display) Level(x, y int) float64 {
	return d.level[y][x]
}

// Colour returns the displayed colour of the LED at (x, y).
func (d *Display) Colour(x, y int) colorful.Color {
	return d.off.BlendRgb(d.on, d.level[y][x])
}

// Halt blanks the matrix. The screen itself is left to its owner.
func (d *Display) Halt() error {
	d.halted = true
	d.frame = image5x5.Frame{}
	d.level = [image5x5.Height][image5x5.Width]float64{}
	style := tcell.StyleDefault
	for y := 0; y < image5x5.Height; y++ {
		for x := 0; x < 2*image5x5.Width; x++ {
			d.screen.SetContent(d.origin.X+x, d.origin.Y+y, ' ', nil, style)
		}
	}
	d.screen.Show()
	return nil
}

// String returns a string representation of the display.
func (d *Display) String() string {
	return fmt.Sprintf("termdisplay.Display{%dx%d}", image5x5.Width, image5x5.Height)
}

var _ display.Drawer = (*Display)(nil)
