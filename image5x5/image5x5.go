// Package image5x5 provides images for 5×5 LED matrix displays.
//
// BitImage stores one byte per row, column 0 in the least significant bit.
// Frame stores one brightness byte per LED.
package image5x5

import (
	"errors"
	"image"
	"image/color"
)

const (
	// Width and Height of the LED matrix.
	Width  = 5
	Height = 5

	// MaxBrightness is the brightness of a fully lit LED.
	MaxBrightness = 9
)

// Rect is the bounds shared by every image in this package.
var Rect = image.Rect(0, 0, Width, Height)

// Renderer is implemented by anything that can be shown on the matrix.
//
// x and y must be in 0..5; other values are a caller error and are not
// checked.
type Renderer interface {
	BrightnessAt(x, y int) uint8
}

// Brightness is the color of a single LED (0 to MaxBrightness).
type Brightness struct {
	Y uint8
}

// RGBA converts the Brightness to standard RGBA.
// Values above MaxBrightness are treated as MaxBrightness.
func (c Brightness) RGBA() (r, g, b, a uint32) {
	y := uint32(min(c.Y, MaxBrightness)) * 0xFFFF / MaxBrightness
	return y, y, y, 0xFFFF
}

// toBrightness converts any color.Color to Brightness.
func toBrightness(c color.Color) color.Color {
	if b, ok := c.(Brightness); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B
	y := (299*r + 587*g + 114*b + 500) / 1000
	// Round 16-bit (0-65535) to 0-MaxBrightness
	return Brightness{Y: uint8((y*MaxBrightness + 0x7FFF) / 0xFFFF)}
}

// BrightnessModel converts colors to Brightness.
var BrightnessModel = color.ModelFunc(toBrightness)

// BitImage is a 5×5 image with two levels of brightness, off and
// MaxBrightness. It uses 5 bytes of storage and is copied by value.
type BitImage [Height]uint8

// New packs a grid of 5 rows (top first) of 5 values (left first).
// Each value must be 0 or 1.
func New(grid *[Height][Width]uint8) BitImage {
	var im BitImage
	for y, row := range grid {
		im[y] = row[0] | row[1]<<1 | row[2]<<2 | row[3]<<3 | row[4]<<4
	}
	return im
}

// FromRows builds a BitImage from already packed rows.
// Bits above bit 4 are discarded.
func FromRows(rows [Height]uint8) BitImage {
	var im BitImage
	for y, row := range rows {
		im[y] = row & 0x1F
	}
	return im
}

// Blank returns an image with every LED off.
func Blank() BitImage {
	return BitImage{}
}

// BrightnessAt returns MaxBrightness if the LED at (x, y) is on, else 0.
func (im BitImage) BrightnessAt(x, y int) uint8 {
	if im[y]&(1<<x) != 0 {
		return MaxBrightness
	}
	return 0
}

// ColorModel returns the color model of the image.
func (im BitImage) ColorModel() color.Model {
	return BrightnessModel
}

// Bounds returns the image bounds.
func (im BitImage) Bounds() image.Rectangle {
	return Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (im BitImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(Rect)) {
		return Brightness{}
	}
	return Brightness{Y: im.BrightnessAt(x, y)}
}

// Frame is a snapshot of what the matrix shows, one brightness per LED,
// indexed [y][x].
type Frame [Height][Width]uint8

// Capture records the current output of r.
func Capture(r Renderer) Frame {
	var f Frame
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			f[y][x] = r.BrightnessAt(x, y)
		}
	}
	return f
}

// BrightnessAt returns the brightness of the LED at (x, y).
func (f *Frame) BrightnessAt(x, y int) uint8 {
	return f[y][x]
}

// Lit reports whether the LED at (x, y) is on at all.
func (f *Frame) Lit(x, y int) bool {
	return f[y][x] != 0
}

// SetBrightness sets the brightness of the pixel at (x, y).
// Out of range coordinates are ignored and values are clamped to
// MaxBrightness.
func (f *Frame) SetBrightness(x, y int, b uint8) {
	if !(image.Point{X: x, Y: y}.In(Rect)) {
		return
	}
	f[y][x] = min(b, MaxBrightness)
}

// ColorModel returns the color model of the frame.
func (f *Frame) ColorModel() color.Model {
	return BrightnessModel
}

// Bounds returns the frame bounds.
func (f *Frame) Bounds() image.Rectangle {
	return Rect
}

// At returns the color of the pixel at (x, y).
func (f *Frame) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(Rect)) {
		return Brightness{}
	}
	return Brightness{Y: f[y][x]}
}

// Set sets the color of the pixel at (x, y).
// It implements the draw.Image interface.
func (f *Frame) Set(x, y int, c color.Color) {
	f.SetBrightness(x, y, BrightnessModel.Convert(c).(Brightness).Y)
}

// MarshalBinary encodes the frame as Width*Height bytes, row by row.
func (f *Frame) MarshalBinary() ([]byte, error) {
	data := make([]byte, 0, Width*Height)
	for _, row := range f {
		data = append(data, row[:]...)
	}
	return data, nil
}

// UnmarshalBinary decodes a frame produced by MarshalBinary.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) != Width*Height {
		return errors.New("image5x5: invalid frame size")
	}
	for i, b := range data {
		if b > MaxBrightness {
			return errors.New("image5x5: brightness out of range")
		}
		f[i/Width][i%Width] = b
	}
	return nil
}
