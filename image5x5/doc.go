// Package image5x5 provides images for 5×5 LED matrix displays.
//
// A micro:bit style display has 5 rows of 5 LEDs. Each LED is driven with a
// brightness between 0 (off) and MaxBrightness (fully on). Anything that can
// answer "how bright is the LED at (x, y)" implements Renderer, so single
// images and whole scrolling animations can be used interchangeably.
//
// Memory layout of a BitImage row (one byte per row, 5 bits used):
//
//	Columns: 0  1  2  3  4
//	Pixels:  1  0  1  1  0
//	Bits:    b0 b1 b2 b3 b4
//	Byte:    0x0D (0b01101)
//
// Column 0 is the leftmost LED and lives in the least significant bit.
//
// This package provides:
//
// - Renderer: the per-LED brightness contract
// - BitImage: an immutable on/off image packed into 5 bytes
// - Frame: a mutable brightness snapshot, usable with image/draw
// - Brightness and BrightnessModel: a color type for standard Go images
//
// Example usage:
//
//	var heart = image5x5.New(&[5][5]uint8{
//		{0, 1, 0, 1, 0},
//		{1, 0, 1, 0, 1},
//		{1, 0, 0, 0, 1},
//		{0, 1, 0, 1, 0},
//		{0, 0, 1, 0, 0},
//	})
//
//	heart.BrightnessAt(1, 0) // MaxBrightness
//
//	// Freeze whatever a Renderer shows right now
//	f := image5x5.Capture(heart)
//	draw.Draw(dst, dst.Bounds(), &f, image.Point{}, draw.Src)
package image5x5
