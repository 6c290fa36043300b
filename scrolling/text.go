package scrolling

import (
	"github.com/flavioheleno/scroll5x5/font"
	"github.com/flavioheleno/scroll5x5/image5x5"
)

// StaticText scrolls an ASCII byte string owned by the caller.
//
// The zero value holds an empty message.
//
//	var s scrolling.StaticText
//	s.SetMessage([]byte("Hello, world!"))
//	for !s.IsFinished() {
//		s.Tick()
//		dev.Show(&s)
//	}
type StaticText struct {
	message []byte
	state   State
}

// SetMessage specifies the bytes to be displayed and resets the animation.
// The slice is borrowed, not copied.
func (s *StaticText) SetMessage(message []byte) {
	s.message = message
	s.Reset()
}

// Length returns the number of characters in the message.
func (s *StaticText) Length() int {
	return len(s.message)
}

// State returns the scrolling state.
func (s *StaticText) State() *State {
	return &s.state
}

// Subimage returns the glyph for the character at index.
func (s *StaticText) Subimage(index int) image5x5.Renderer {
	return font.Character(s.message[index])
}

// SubimageBrightnessAt returns the brightness of (x, y) in the glyph for
// the character at index.
func (s *StaticText) SubimageBrightnessAt(index, x, y int) uint8 {
	return font.Character(s.message[index]).BrightnessAt(x, y)
}

// BrightnessAt returns the brightness of the LED at (x, y).
func (s *StaticText) BrightnessAt(x, y int) uint8 {
	return BrightnessAt(s, x, y)
}

// IsFinished reports whether the animation has completed.
func (s *StaticText) IsFinished() bool {
	return IsFinished(s)
}

// Reset rewinds the animation.
func (s *StaticText) Reset() {
	Reset(s)
}

// Tick advances the animation.
func (s *StaticText) Tick() {
	Tick(s)
}

// BufferedText scrolls an ASCII message copied into a buffer of fixed
// capacity. The buffer is allocated once by NewBufferedText and never grows.
type BufferedText struct {
	length  int
	message []byte
	state   State
}

// NewBufferedText returns a BufferedText holding up to capacity bytes.
func NewBufferedText(capacity int) *BufferedText {
	if capacity < 0 {
		panic("scrolling: negative capacity")
	}
	return &BufferedText{message: make([]byte, capacity)}
}

// SetMessage copies message into the buffer and resets the animation.
//
// SetMessage panics if message is longer than the capacity.
func (s *BufferedText) SetMessage(message []byte) {
	if len(message) > len(s.message) {
		panic("scrolling: message too long")
	}
	s.length = copy(s.message, message)
	s.Reset()
}

// SetString is SetMessage for a string.
func (s *BufferedText) SetString(message string) {
	if len(message) > len(s.message) {
		panic("scrolling: message too long")
	}
	s.length = copy(s.message, message)
	s.Reset()
}

// Cap returns the capacity of the buffer.
func (s *BufferedText) Cap() int {
	return len(s.message)
}

// Message returns the current message. It aliases the internal buffer and
// is only valid until the next SetMessage.
func (s *BufferedText) Message() []byte {
	return s.message[:s.length]
}

// Length returns the number of characters in the current message.
func (s *BufferedText) Length() int {
	return s.length
}

// State returns the scrolling state.
func (s *BufferedText) State() *State {
	return &s.state
}

// Subimage returns the glyph for the character at index.
func (s *BufferedText) Subimage(index int) image5x5.Renderer {
	return font.Character(s.message[index])
}

// SubimageBrightnessAt returns the brightness of (x, y) in the glyph for
// the character at index.
func (s *BufferedText) SubimageBrightnessAt(index, x, y int) uint8 {
	return font.Character(s.message[index]).BrightnessAt(x, y)
}

// BrightnessAt returns the brightness of the LED at (x, y).
func (s *BufferedText) BrightnessAt(x, y int) uint8 {
	return BrightnessAt(s, x, y)
}

// IsFinished reports whether the animation has completed.
func (s *BufferedText) IsFinished() bool {
	return IsFinished(s)
}

// Reset rewinds the animation.
func (s *BufferedText) Reset() {
	Reset(s)
}

// Tick advances the animation.
func (s *BufferedText) Tick() {
	Tick(s)
}

var (
	_ Sequence = (*Statics[image5x5.BitImage])(nil)
	_ Sequence = (*StaticText)(nil)
	_ Sequence = (*BufferedText)(nil)
)
