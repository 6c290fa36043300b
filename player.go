package scroll5x5

import (
	"context"
	"errors"
	"image"
	"image/draw"
	"sync"
	"time"

	"github.com/flavioheleno/scroll5x5/image5x5"
	"github.com/flavioheleno/scroll5x5/scrolling"
	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"
)

// DefaultTick is the interval between animation steps when none is given.
const DefaultTick = 60 * time.Millisecond

// ErrNotRunning is returned by Replace when Run has returned.
var ErrNotRunning = errors.New("scroll5x5: player not running")

// PlayerOpts is the configuration for a Player.
type PlayerOpts struct {
	Tick     time.Duration // Interval between steps (default: DefaultTick)
	Loop     bool          // Restart the sequence when it finishes
	OnFinish func()        // Called every time the sequence finishes (optional)
	Hold     bool          // Without Loop, wait for Replace once finished instead of returning
}

// Player animates a scrolling sequence on a display.
//
// Frames are scaled to the largest centred square that fits the display,
// so the same Player works for a 5×5 Dev and for larger panels.
type Player struct {
	d   display.Drawer
	seq scrolling.Sequence

	tick     time.Duration
	loop     bool
	hold     bool
	onFinish func()

	// Scratch image for displays larger than 5×5
	canvas *image.Gray

	reqs chan func()

	mu   sync.Mutex
	done chan struct{} // Closed when Run returns
}

// NewPlayer creates a Player drawing seq onto d.
//
// opts can be nil to use defaults.
func NewPlayer(d display.Drawer, seq scrolling.Sequence, opts *PlayerOpts) *Player {
	if opts == nil {
		opts = &PlayerOpts{}
	}
	p := &Player{
		d:        d,
		seq:      seq,
		tick:     opts.Tick,
		loop:     opts.Loop,
		hold:     opts.Hold,
		onFinish: opts.OnFinish,
		reqs:     make(chan func()),
		done:     make(chan struct{}),
	}
	if p.tick <= 0 {
		p.tick = DefaultTick
	}
	return p
}

// Step draws the current frame and advances the sequence.
// It returns true once the sequence has finished and Loop is off.
func (p *Player) Step() (bool, error) {
	f := image5x5.Capture(p.seq)
	if err := p.draw(&f); err != nil {
		return false, err
	}

	if !p.seq.IsFinished() {
		p.seq.Tick()
		return false, nil
	}

	if p.onFinish != nil {
		p.onFinish()
	}
	if p.loop {
		p.seq.Reset()
		return false, nil
	}
	return true, nil
}

// draw scales f onto the display.
func (p *Player) draw(f *image5x5.Frame) error {
	bounds := p.d.Bounds()
	if bounds == image5x5.Rect {
		return p.d.Draw(bounds, f, image.Point{})
	}

	if p.canvas == nil || p.canvas.Rect != bounds {
		p.canvas = image.NewGray(bounds)
	}
	draw.Draw(p.canvas, bounds, image.Black, image.Point{}, draw.Src)
	xdraw.NearestNeighbor.Scale(p.canvas, fit(bounds), f, f.Bounds(), draw.Src, nil)
	return p.d.Draw(bounds, p.canvas, bounds.Min)
}

// fit returns the largest centred square inside r whose side is a
// multiple of 5, so every LED maps to the same number of pixels.
func fit(r image.Rectangle) image.Rectangle {
	side := min(r.Dx(), r.Dy())
	if side >= image5x5.Width {
		side -= side % image5x5.Width
	}
	o := r.Min.Add(image.Pt((r.Dx()-side)/2, (r.Dy()-side)/2))
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(side, side))}
}

// Run steps the sequence every tick until it finishes (when neither Loop
// nor Hold is set) or ctx is done.
//
// With Hold, a finished sequence stays on its last frame and stepping
// resumes once a Replace function restarts it.
func (p *Player) Run(ctx context.Context) error {
	done := p.start()
	defer close(done)

	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	idle := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-p.reqs:
			fn()
			idle = idle && p.seq.IsFinished()
		case <-ticker.C:
			if idle {
				continue
			}
			finished, err := p.Step()
			if err != nil {
				return err
			}
			if finished {
				if !p.hold {
					return nil
				}
				idle = true
			}
		}
	}
}

// start returns the channel to close when Run returns, replacing the one
// of a previous Run.
func (p *Player) start() chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	select {
	case <-p.done:
		p.done = make(chan struct{})
	default:
	}
	return p.done
}

// Replace runs fn between two steps of a running Player.
//
// Use it to change the content of the sequence (for example with
// SetMessage) from another goroutine. It blocks until Run picks fn up or
// ctx is done. It returns ErrNotRunning without running fn if Run returns
// first.
func (p *Player) Replace(ctx context.Context, fn func()) error {
	if fn == nil {
		return errors.New("scroll5x5: nil replace function")
	}
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	select {
	case p.reqs <- fn:
		return nil
	case <-done:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}
}
