// Package scrolling scrolls sequences of 5×5 images horizontally.
//
// Each kind of scrolling sequence is a type implementing Scrollable. The
// package functions BrightnessAt, IsFinished, Reset and Tick implement the
// animation for any Scrollable, so a new kind of sequence only has to supply
// its length, its State and access to its images, then delegate:
//
//	func (s *Mine) BrightnessAt(x, y int) uint8 { return scrolling.BrightnessAt(s, x, y) }
//	func (s *Mine) IsFinished() bool           { return scrolling.IsFinished(s) }
//	func (s *Mine) Reset()                     { scrolling.Reset(s) }
//	func (s *Mine) Tick()                      { scrolling.Tick(s) }
//
// See Statics for scrolling arbitrary images and StaticText and BufferedText
// for scrolling ASCII text.
//
// None of the types in this package are safe for concurrent use. The host
// is expected to serialize Tick, BrightnessAt and content changes.
package scrolling

import (
	"fmt"

	"github.com/flavioheleno/scroll5x5/image5x5"
)

// Animate controls an animation.
type Animate interface {
	// IsFinished reports whether the animation has completed.
	IsFinished() bool

	// Reset rewinds the animation to the beginning.
	Reset()

	// Tick advances to the next step of the animation.
	// If the animation has completed, it does nothing.
	Tick()
}

// Sequence is an animation that can be displayed.
type Sequence interface {
	Animate
	image5x5.Renderer
}

// State records the position of a scrolling animation.
//
// The zero value is the start of the animation.
type State struct {
	// index of the image being scrolled on, or about to be scrolled on
	index int
	// 0..5
	pixel int
}

// Reset returns the state to the beginning.
func (s *State) Reset() {
	s.index = 0
	s.pixel = 0
}

// Tick advances the state by one pixel.
func (s *State) Tick() {
	s.pixel++
	if s.pixel == image5x5.Width {
		s.pixel = 0
		s.index++
	}
}

// Index returns the position of the image currently entering the display.
func (s *State) Index() int {
	return s.index
}

// Pixel returns the offset into the current pair of images (0..4).
func (s *State) Pixel() int {
	return s.pixel
}

// String returns a string representation of the state.
func (s *State) String() string {
	return fmt.Sprintf("scrolling.State{index: %d, pixel: %d}", s.index, s.pixel)
}

// Scrollable is a horizontally scrolling sequence of 5×5 images.
type Scrollable interface {
	// Length returns the number of underlying images.
	Length() int

	// State returns the current point in the animation.
	State() *State

	// Subimage returns the underlying image at index.
	Subimage(index int) image5x5.Renderer

	// SubimageBrightnessAt returns the brightness of (x, y) in the
	// underlying image at index. It must not allocate.
	SubimageBrightnessAt(index, x, y int) uint8
}

// BrightnessAt returns the brightness of the LED at (x, y) in the current
// state of s.
//
// The display is a 5 pixel wide window onto the images of s laid side by
// side. The window straddles images index-1 and index, shifted right by
// pixel columns. Nothing precedes the first image or follows the last.
func BrightnessAt(s Scrollable, x, y int) uint8 {
	state := s.State()
	length := s.Length()
	if state.index > length {
		return 0
	}
	col := x + state.pixel
	if col < image5x5.Width {
		if state.index == 0 {
			return 0
		}
		return s.SubimageBrightnessAt(state.index-1, col, y)
	}
	if state.index == length {
		return 0
	}
	return s.SubimageBrightnessAt(state.index, col-image5x5.Width, y)
}

// IsFinished reports whether the last image of s has scrolled off.
func IsFinished(s Scrollable) bool {
	return s.State().index > s.Length()
}

// Reset rewinds s to the beginning.
func Reset(s Scrollable) {
	s.State().Reset()
}

// Tick advances s by one pixel unless it has finished.
func Tick(s Scrollable) {
	if !IsFinished(s) {
		s.State().Tick()
	}
}

// Steps returns the number of ticks needed to finish a sequence of length
// images from the start.
func Steps(length int) int {
	return image5x5.Width * (length + 1)
}
