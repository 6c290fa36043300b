package scrolling

import "github.com/flavioheleno/scroll5x5/image5x5"

// Statics scrolls a slice of arbitrary images.
//
// The slice is borrowed, not copied; the caller must not modify it while it
// is being displayed. The zero value holds no images.
//
//	var s scrolling.Statics[image5x5.BitImage]
//	s.SetImages([]image5x5.BitImage{heart, image5x5.Blank(), heart})
//	for !s.IsFinished() {
//		// every 50ms or so
//		s.Tick()
//		dev.Show(&s)
//	}
type Statics[T image5x5.Renderer] struct {
	images []T
	state  State
}

// SetImages specifies the images to be displayed and resets the animation.
func (s *Statics[T]) SetImages(images []T) {
	s.images = images
	s.Reset()
}

// Length returns the number of images.
func (s *Statics[T]) Length() int {
	return len(s.images)
}

// State returns the scrolling state.
func (s *Statics[T]) State() *State {
	return &s.state
}

// Subimage returns the image at index.
//
// When T is a value type the result points into the slice given to
// SetImages, so that no copy of the image is made.
func (s *Statics[T]) Subimage(index int) image5x5.Renderer {
	if r, ok := any(&s.images[index]).(image5x5.Renderer); ok {
		return r
	}
	// T is already a pointer or an interface
	return s.images[index]
}

// SubimageBrightnessAt returns the brightness of (x, y) in the image at
// index.
func (s *Statics[T]) SubimageBrightnessAt(index, x, y int) uint8 {
	return s.Subimage(index).BrightnessAt(x, y)
}

// BrightnessAt returns the brightness of the LED at (x, y).
func (s *Statics[T]) BrightnessAt(x, y int) uint8 {
	return BrightnessAt(s, x, y)
}

// IsFinished reports whether the animation has completed.
func (s *Statics[T]) IsFinished() bool {
	return IsFinished(s)
}

// Reset rewinds the animation.
func (s *Statics[T]) Reset() {
	Reset(s)
}

// Tick advances the animation.
func (s *Statics[T]) Tick() {
	Tick(s)
}
