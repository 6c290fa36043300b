// Package scroll5x5 drives 5×5 LED matrices with scrolling images and text.
//
// The matrix is the one found on a BBC micro:bit: 25 LEDs wired as 5 rows
// and 5 columns, lit one row at a time. This package implements the
// display.Drawer interface from periph.io for such a matrix and provides a
// Player that animates scrolling sequences on any display.Drawer.
//
// # Packages
//
// - image5x5: the Renderer contract, BitImage and Frame
// - font: 5×5 glyphs for printable ASCII
// - scrolling: the scrolling engine and its sequences (Statics, StaticText, BufferedText)
// - termdisplay: a display.Drawer that shows the matrix in a terminal
// - remote: MQTT control and frame streaming
//
// # Hardware Connection
//
// Connect the matrix to 10 GPIO pins:
//
//	Matrix Pin → System Pin
//	ROW0..ROW4 → GPIO (driven high to select a row)
//	COL0..COL4 → GPIO (driven low to light an LED in the selected row)
//
// Use Opts.RowActiveLow and Opts.ColActiveHigh for other wirings.
//
// # Basic Usage
//
// Example of scrolling a message:
//
//	package main
//
//	import (
//		"context"
//		"time"
//
//		"github.com/flavioheleno/scroll5x5"
//		"github.com/flavioheleno/scroll5x5/scrolling"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		opts := &scroll5x5.Opts{}
//		for i, name := range []string{"GPIO5", "GPIO6", "GPIO13", "GPIO19", "GPIO26"} {
//			opts.Rows[i] = gpioreg.ByName(name)
//		}
//		for i, name := range []string{"GPIO12", "GPIO16", "GPIO20", "GPIO21", "GPIO25"} {
//			opts.Cols[i] = gpioreg.ByName(name)
//		}
//
//		dev, _ := scroll5x5.New(opts)
//		defer dev.Halt()
//
//		// Multiplex rows in the background
//		go func() {
//			for range time.Tick(2 * time.Millisecond) {
//				dev.Refresh()
//			}
//		}()
//
//		text := scrolling.NewBufferedText(64)
//		text.SetString("Hello, world!")
//
//		p := scroll5x5.NewPlayer(dev, text, nil)
//		p.Run(context.Background())
//	}
//
// # Scrolling
//
// A scrolling sequence is a strip of 5×5 images laid side by side. Each
// Tick moves the display window one column to the right. A sequence of n
// images finishes after 5*(n+1) ticks: it starts blank, scrolls every image
// across and ends blank again.
//
//	var s scrolling.Statics[image5x5.BitImage]
//	s.SetImages([]image5x5.BitImage{heart, image5x5.Blank(), heart})
//	for !s.IsFinished() {
//		s.Tick()
//		dev.Show(&s)
//	}
//
// # Larger Displays
//
// Player scales frames to the largest centred square that fits a
// display.Drawer, so the same sequences can be shown on, for example, an
// SSD1306 or SSD1322 OLED from periph.io/x/devices.
//
// # Compatibility with periph.io
//
// Dev implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package scroll5x5
