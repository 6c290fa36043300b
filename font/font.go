// Package font provides 5×5 images of the printable ASCII characters.
//
// The glyphs follow the style of the "pendolino" font of the micro:bit
// runtime. Most glyphs leave column 4 empty so that consecutive characters
// are separated when scrolled; a few wide ones (M, W, m, w and some symbols)
// use all five columns.
package font

import "github.com/flavioheleno/scroll5x5/image5x5"

const (
	// First and Last are the character codes covered by the table.
	First = 0x20
	Last  = 0x7E
)

// glyphs holds one image per printable character, rows top first.
// Rows are in BitImage order, column 0 in the least significant bit, so
// each binary literal reads as the row seen in a mirror.
var glyphs = [Last - First + 1]image5x5.BitImage{
	{0b00000, 0b00000, 0b00000, 0b00000, 0b00000}, // ' '
	{0b00010, 0b00010, 0b00010, 0b00000, 0b00010}, // '!'
	{0b01010, 0b01010, 0b00000, 0b00000, 0b00000}, // '"'
	{0b01010, 0b11111, 0b01010, 0b11111, 0b01010}, // '#'
	{0b01110, 0b00011, 0b01110, 0b11000, 0b01110}, // '$'
	{0b10011, 0b01001, 0b00100, 0b10010, 0b11001}, // '%'
	{0b00110, 0b01001, 0b00110, 0b01001, 0b10110}, // '&'
	{0b00010, 0b00010, 0b00000, 0b00000, 0b00000}, // '\''
	{0b00100, 0b00010, 0b00010, 0b00010, 0b00100}, // '('
	{0b00010, 0b00100, 0b00100, 0b00100, 0b00010}, // ')'
	{0b00000, 0b01010, 0b00100, 0b01010, 0b00000}, // '*'
	{0b00000, 0b00100, 0b01110, 0b00100, 0b00000}, // '+'
	{0b00000, 0b00000, 0b00000, 0b00100, 0b00010}, // ','
	{0b00000, 0b00000, 0b01110, 0b00000, 0b00000}, // '-'
	{0b00000, 0b00000, 0b00000, 0b00000, 0b00010}, // '.'
	{0b10000, 0b01000, 0b00100, 0b00010, 0b00001}, // '/'
	{0b00110, 0b01001, 0b01001, 0b01001, 0b00110}, // '0'
	{0b00100, 0b00110, 0b00100, 0b00100, 0b01110}, // '1'
	{0b00111, 0b01000, 0b00110, 0b00001, 0b01111}, // '2'
	{0b01111, 0b01000, 0b00100, 0b01001, 0b00110}, // '3'
	{0b01100, 0b01010, 0b01001, 0b11111, 0b01000}, // '4'
	{0b01111, 0b00001, 0b00111, 0b01000, 0b00111}, // '5'
	{0b01000, 0b00100, 0b01110, 0b01001, 0b00110}, // '6'
	{0b01111, 0b01000, 0b00100, 0b00010, 0b00001}, // '7'
	{0b00110, 0b01001, 0b00110, 0b01001, 0b00110}, // '8'
	{0b01110, 0b01001, 0b01110, 0b00100, 0b00010}, // '9'
	{0b00000, 0b00010, 0b00000, 0b00010, 0b00000}, // ':'
	{0b00000, 0b00100, 0b00000, 0b00100, 0b00010}, // ';'
	{0b01000, 0b00100, 0b00010, 0b00100, 0b01000}, // '<'
	{0b00000, 0b01111, 0b00000, 0b01111, 0b00000}, // '='
	{0b00010, 0b00100, 0b01000, 0b00100, 0b00010}, // '>'
	{0b01110, 0b01000, 0b00100, 0b00000, 0b00100}, // '?'
	{0b01110, 0b10001, 0b10101, 0b11001, 0b00110}, // '@'
	{0b00110, 0b01001, 0b01111, 0b01001, 0b01001}, // 'A'
	{0b00111, 0b01001, 0b00111, 0b01001, 0b00111}, // 'B'
	{0b01110, 0b00001, 0b00001, 0b00001, 0b01110}, // 'C'
	{0b00111, 0b01001, 0b01001, 0b01001, 0b00111}, // 'D'
	{0b01111, 0b00001, 0b00111, 0b00001, 0b01111}, // 'E'
	{0b01111, 0b00001, 0b00111, 0b00001, 0b00001}, // 'F'
	{0b01110, 0b00001, 0b11001, 0b10001, 0b01110}, // 'G'
	{0b01001, 0b01001, 0b01111, 0b01001, 0b01001}, // 'H'
	{0b00111, 0b00010, 0b00010, 0b00010, 0b00111}, // 'I'
	{0b11111, 0b01000, 0b01000, 0b01001, 0b00110}, // 'J'
	{0b01001, 0b00101, 0b00011, 0b00101, 0b01001}, // 'K'
	{0b00001, 0b00001, 0b00001, 0b00001, 0b01111}, // 'L'
	{0b10001, 0b11011, 0b10101, 0b10001, 0b10001}, // 'M'
	{0b10001, 0b10011, 0b10101, 0b11001, 0b10001}, // 'N'
	{0b00110, 0b01001, 0b01001, 0b01001, 0b00110}, // 'O'
	{0b00111, 0b01001, 0b00111, 0b00001, 0b00001}, // 'P'
	{0b00110, 0b01001, 0b01001, 0b00110, 0b01100}, // 'Q'
	{0b00111, 0b01001, 0b00111, 0b01001, 0b10001}, // 'R'
	{0b01110, 0b00001, 0b00110, 0b01000, 0b00111}, // 'S'
	{0b11111, 0b00100, 0b00100, 0b00100, 0b00100}, // 'T'
	{0b01001, 0b01001, 0b01001, 0b01001, 0b00110}, // 'U'
	{0b10001, 0b10001, 0b10001, 0b01010, 0b00100}, // 'V'
	{0b10001, 0b10001, 0b10101, 0b11011, 0b10001}, // 'W'
	{0b01001, 0b01001, 0b00110, 0b01001, 0b01001}, // 'X'
	{0b10001, 0b01010, 0b00100, 0b00100, 0b00100}, // 'Y'
	{0b01111, 0b00100, 0b00010, 0b00001, 0b01111}, // 'Z'
	{0b01110, 0b00010, 0b00010, 0b00010, 0b01110}, // '['
	{0b00001, 0b00010, 0b00100, 0b01000, 0b10000}, // '\\'
	{0b01110, 0b01000, 0b01000, 0b01000, 0b01110}, // ']'
	{0b00100, 0b01010, 0b00000, 0b00000, 0b00000}, // '^'
	{0b00000, 0b00000, 0b00000, 0b00000, 0b11111}, // '_'
	{0b00010, 0b00100, 0b00000, 0b00000, 0b00000}, // '`'
	{0b00000, 0b01110, 0b01001, 0b01001, 0b11110}, // 'a'
	{0b00001, 0b00001, 0b00111, 0b01001, 0b00111}, // 'b'
	{0b00000, 0b01110, 0b00001, 0b00001, 0b01110}, // 'c'
	{0b01000, 0b01000, 0b01110, 0b01001, 0b01110}, // 'd'
	{0b00110, 0b01001, 0b00111, 0b00001, 0b01110}, // 'e'
	{0b01100, 0b00010, 0b00111, 0b00010, 0b00010}, // 'f'
	{0b01110, 0b01001, 0b01110, 0b01000, 0b00110}, // 'g'
	{0b00001, 0b00001, 0b00111, 0b01001, 0b01001}, // 'h'
	{0b00010, 0b00000, 0b00010, 0b00010, 0b00010}, // 'i'
	{0b01000, 0b00000, 0b01000, 0b01001, 0b00110}, // 'j'
	{0b00001, 0b00101, 0b00011, 0b00101, 0b01001}, // 'k'
	{0b00010, 0b00010, 0b00010, 0b00010, 0b01100}, // 'l'
	{0b00000, 0b11011, 0b10101, 0b10001, 0b10001}, // 'm'
	{0b00000, 0b00111, 0b01001, 0b01001, 0b01001}, // 'n'
	{0b00000, 0b00110, 0b01001, 0b01001, 0b00110}, // 'o'
	{0b00000, 0b00111, 0b01001, 0b00111, 0b00001}, // 'p'
	{0b00000, 0b01110, 0b01001, 0b01110, 0b01000}, // 'q'
	{0b00000, 0b01110, 0b00001, 0b00001, 0b00001}, // 'r'
	{0b00000, 0b01100, 0b00010, 0b00100, 0b00011}, // 's'
	{0b00010, 0b01110, 0b00010, 0b00010, 0b01100}, // 't'
	{0b00000, 0b01001, 0b01001, 0b01001, 0b11110}, // 'u'
	{0b00000, 0b10001, 0b10001, 0b01010, 0b00100}, // 'v'
	{0b00000, 0b10001, 0b10001, 0b10101, 0b01010}, // 'w'
	{0b00000, 0b01001, 0b00110, 0b00110, 0b01001}, // 'x'
	{0b00000, 0b10001, 0b01010, 0b00100, 0b00011}, // 'y'
	{0b00000, 0b01111, 0b00100, 0b00010, 0b01111}, // 'z'
	{0b01100, 0b00100, 0b00110, 0b00100, 0b01100}, // '{'
	{0b00010, 0b00010, 0b00010, 0b00010, 0b00010}, // '|'
	{0b00011, 0b00010, 0b00110, 0b00010, 0b00011}, // '}'
	{0b00000, 0b00010, 0b10101, 0b01000, 0b00000}, // '~'
}

// Printable reports whether c has its own glyph.
func Printable(c byte) bool {
	return c >= First && c <= Last
}

// Character returns the glyph for c.
// Characters without a glyph are shown as a space.
func Character(c byte) *image5x5.BitImage {
	if !Printable(c) {
		return &glyphs[0]
	}
	return &glyphs[c-First]
}
