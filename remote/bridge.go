// Package remote connects a scrolling display to an MQTT broker.
//
// A Bridge scrolls every message received on the message topic and can
// publish the frames it shows, 25 bytes each in row-major order, on the
// frames topic.
package remote

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/flavioheleno/scroll5x5"
	"github.com/flavioheleno/scroll5x5/image5x5"
	"github.com/flavioheleno/scroll5x5/scrolling"
	"periph.io/x/conn/v3/display"
)

// Timeout bounds every broker round trip and every message hand-off to the
// Player.
const Timeout = 5 * time.Second

// Client is the part of mqtt.Client used by a Bridge.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// Bridge feeds MQTT messages to a Player and publishes its frames.
type Bridge struct {
	client Client
	topics Topics
	text   *scrolling.BufferedText

	mu     sync.Mutex
	player *scroll5x5.Player // Set while Play runs
	plays  int               // Calls to Play so far
}

// NewBridge creates a Bridge. Received messages replace the content of
// text.
func NewBridge(client Client, cfg *Config, text *scrolling.BufferedText) *Bridge {
	return &Bridge{
		client: client,
		topics: cfg.Mqtt.Topics,
		text:   text,
	}
}

// Play runs p until it returns. p must play the text given to NewBridge;
// while it runs, messages are handed to it between two steps.
func (b *Bridge) Play(ctx context.Context, p *scroll5x5.Player) error {
	b.mu.Lock()
	if b.player != nil {
		b.mu.Unlock()
		return errors.New("remote: already playing")
	}
	b.player = p
	b.plays++
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.player = nil
		b.mu.Unlock()
	}()
	return p.Run(ctx)
}

// Subscribe subscribes to the message topic. Call it again after every
// reconnection.
func (b *Bridge) Subscribe() error {
	token := b.client.Subscribe(b.topics.Message, 0, b.handleMessage)
	if !token.WaitTimeout(Timeout) {
		return fmt.Errorf("remote: subscribing to %s timed out", b.topics.Message)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("remote: failed to subscribe to %s: %w", b.topics.Message, err)
	}
	return nil
}

func (b *Bridge) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	if err := b.SetMessage(ctx, msg.Payload()); err != nil {
		log.Printf("remote: dropped message on %s: %v", msg.Topic(), err)
	}
}

// SetMessage makes the text scroll message from the start. Messages
// longer than the text capacity are truncated.
func (b *Bridge) SetMessage(ctx context.Context, message []byte) error {
	if n := b.text.Cap(); len(message) > n {
		log.Printf("remote: message of %d bytes truncated to %d", len(message), n)
		message = message[:n]
	}

	for {
		b.mu.Lock()
		p, play := b.player, b.plays
		if p == nil {
			b.text.SetMessage(message)
			b.mu.Unlock()
			return nil
		}
		b.mu.Unlock()

		err := p.Replace(ctx, func() {
			b.text.SetMessage(message)
		})
		if !errors.Is(err, scroll5x5.ErrNotRunning) {
			return err
		}

		// Run has returned but Play may not have let go of p yet
		b.mu.Lock()
		if b.plays == play {
			b.text.SetMessage(message)
			b.mu.Unlock()
			return nil
		}
		b.mu.Unlock()
	}
}

// PublishFrame publishes f on the frames topic at QoS 0. It does nothing
// when no frames topic is configured.
func (b *Bridge) PublishFrame(f *image5x5.Frame) error {
	if b.topics.Frames == "" {
		return nil
	}
	data, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := b.client.Publish(b.topics.Frames, 0, false, data)
	if !token.WaitTimeout(Timeout) {
		return fmt.Errorf("remote: publishing to %s timed out", b.topics.Frames)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("remote: failed to publish to %s: %w", b.topics.Frames, err)
	}
	return nil
}

// FrameSink is a 5×5 display.Drawer that publishes every frame drawn on it
// and optionally forwards it to another 5×5 display.
type FrameSink struct {
	bridge *Bridge
	next   display.Drawer
	frame  image5x5.Frame
}

// NewFrameSink creates a FrameSink publishing through b. next can be nil
// to run without a local display.
func NewFrameSink(b *Bridge, next display.Drawer) (*FrameSink, error) {
	if b == nil {
		return nil, errors.New("remote: bridge is required")
	}
	if next != nil && next.Bounds() != image5x5.Rect {
		return nil, fmt.Errorf("remote: display bounds %v, want %v", next.Bounds(), image5x5.Rect)
	}
	return &FrameSink{bridge: b, next: next}, nil
}

// ColorModel returns the color model of the sink.
func (s *FrameSink) ColorModel() color.Model {
	return image5x5.BrightnessModel
}

// Bounds returns the image bounds of the sink.
func (s *FrameSink) Bounds() image.Rectangle {
	return image5x5.Rect
}

// Draw latches src into the dst region, forwards the result and publishes
// it. It implements display.Drawer.
func (s *FrameSink) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	dst = dst.Intersect(image5x5.Rect)
	if !dst.Empty() {
		draw.Draw(&s.frame, dst, src, sp, draw.Src)
	}
	if s.next != nil {
		if err := s.next.Draw(image5x5.Rect, &s.frame, image.Point{}); err != nil {
			return err
		}
	}
	return s.bridge.PublishFrame(&s.frame)
}

// Halt halts the forwarded display, if any.
func (s *FrameSink) Halt() error {
	if s.next != nil {
		return s.next.Halt()
	}
	return nil
}

// String returns a string representation of the sink.
func (s *FrameSink) String() string {
	return fmt.Sprintf("remote.FrameSink{%s}", s.bridge.topics.Frames)
}

var _ display.Drawer = (*FrameSink)(nil)
