package remote

import (
	"context"
	"errors"
	"image"
	"strings"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/flavioheleno/scroll5x5"
	"github.com/flavioheleno/scroll5x5/font"
	"github.com/flavioheleno/scroll5x5/image5x5"
	"github.com/flavioheleno/scroll5x5/scrolling"
	"github.com/flavioheleno/scroll5x5/termdisplay"
	"github.com/gdamore/tcell/v2"
)

// token is a completed mqtt.Token.
type token struct {
	err error
}

func (t *token) Wait() bool                     { return true }
func (t *token) WaitTimeout(time.Duration) bool { return true }
func (t *token) Error() error                   { return t.err }

func (t *token) Done() <-chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}

type published struct {
	topic   string
	qos     byte
	payload []byte
}

// fakeClient records publications and subscriptions.
type fakeClient struct {
	mu        sync.Mutex
	err       error
	published []published
	topic     string
	handler   mqtt.MessageHandler
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published = append(c.published, published{topic, qos, payload.([]byte)})
	return &token{err: c.err}
}

func (c *fakeClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.topic = topic
	c.handler = callback
	return &token{err: c.err}
}

func (c *fakeClient) publications() []published {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]published(nil), c.published...)
}

// message is an mqtt.Message carrying a payload.
type message struct {
	topic   string
	payload []byte
}

func (m *message) Duplicate() bool   { return false }
func (m *message) Qos() byte         { return 0 }
func (m *message) Retained() bool    { return false }
func (m *message) Topic() string     { return m.topic }
func (m *message) MessageID() uint16 { return 1 }
func (m *message) Payload() []byte   { return m.payload }
func (m *message) Ack()              {}

func testConfig(t *testing.T, frames string) *Config {
	t.Helper()
	cfg := &Config{}
	cfg.Mqtt.URL = "tcp://localhost:1883"
	cfg.Mqtt.Topics.Frames = frames
	cfg.Display.Capacity = 8
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	return cfg
}

// setup returns a running Player wired to a Bridge through a headless
// FrameSink. The returned function stops the Player.
func setup(t *testing.T, client *fakeClient, frames string) (*Bridge, *scrolling.BufferedText, func()) {
	t.Helper()
	cfg := testConfig(t, frames)
	text := scrolling.NewBufferedText(cfg.Display.Capacity)
	b := NewBridge(client, cfg, text)
	sink, err := NewFrameSink(b, nil)
	if err != nil {
		t.Fatalf("NewFrameSink() error = %v", err)
	}
	p := scroll5x5.NewPlayer(sink, text, &scroll5x5.PlayerOpts{Tick: time.Millisecond, Loop: true})

	ctx, cancel := context.WithCancel(context.Background())
	errC := make(chan error, 1)
	go func() { errC <- b.Play(ctx, p) }()
	waitPlaying(t, b)
	return b, text, func() {
		cancel()
		if err := <-errC; !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want %v", err, context.Canceled)
		}
	}
}

func waitPlaying(t *testing.T, b *Bridge) {
	t.Helper()
	deadline := time.Now().Add(Timeout)
	for {
		b.mu.Lock()
		playing := b.player != nil
		b.mu.Unlock()
		if playing {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("Play() did not start")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSubscribe(t *testing.T) {
	client := &fakeClient{}
	b, text, stop := setup(t, client, "")

	if err := b.Subscribe(); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if client.topic != DefaultMessageTopic {
		t.Errorf("subscribed to %q, want %q", client.topic, DefaultMessageTopic)
	}

	client.handler(nil, &message{topic: DefaultMessageTopic, payload: []byte("hi")})
	stop()

	if got := string(text.Message()); got != "hi" {
		t.Errorf("Message() = %q, want %q", got, "hi")
	}
	if len(client.publications()) != 0 {
		t.Error("frames were published without a frames topic")
	}
}

func TestSubscribeError(t *testing.T) {
	wantErr := errors.New("not authorized")
	b := NewBridge(&fakeClient{err: wantErr}, testConfig(t, ""), scrolling.NewBufferedText(1))
	if err := b.Subscribe(); !errors.Is(err, wantErr) {
		t.Errorf("Subscribe() error = %v, want %v", err, wantErr)
	}
}

func TestSetMessageTruncates(t *testing.T) {
	b, text, stop := setup(t, &fakeClient{}, "")

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	if err := b.SetMessage(ctx, []byte("much too long")); err != nil {
		t.Fatalf("SetMessage() error = %v", err)
	}
	stop()

	if got := string(text.Message()); got != "much too" {
		t.Errorf("Message() = %q, want %q", got, "much too")
	}
}

func TestPublishFrame(t *testing.T) {
	client := &fakeClient{}
	b := NewBridge(client, testConfig(t, "frames"), scrolling.NewBufferedText(1))

	f := image5x5.Capture(font.Character('A'))
	if err := b.PublishFrame(&f); err != nil {
		t.Fatalf("PublishFrame() error = %v", err)
	}

	pubs := client.publications()
	if len(pubs) != 1 {
		t.Fatalf("published %d messages, want 1", len(pubs))
	}
	if pubs[0].topic != "frames" || pubs[0].qos != 0 {
		t.Errorf("published to %q at QoS %d, want %q at QoS 0", pubs[0].topic, pubs[0].qos, "frames")
	}
	var got image5x5.Frame
	if err := got.UnmarshalBinary(pubs[0].payload); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if got != f {
		t.Errorf("published frame = %v, want %v", got, f)
	}
}

func TestPublishFrameError(t *testing.T) {
	wantErr := errors.New("not connected")
	b := NewBridge(&fakeClient{err: wantErr}, testConfig(t, "frames"), scrolling.NewBufferedText(1))
	var f image5x5.Frame
	if err := b.PublishFrame(&f); !errors.Is(err, wantErr) {
		t.Errorf("PublishFrame() error = %v, want %v", err, wantErr)
	}
}

func TestFrameSinkPublishesPlayback(t *testing.T) {
	client := &fakeClient{}
	b, _, stop := setup(t, client, "frames")

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	if err := b.SetMessage(ctx, []byte("go")); err != nil {
		t.Fatalf("SetMessage() error = %v", err)
	}

	deadline := time.Now().Add(Timeout)
	for len(client.publications()) < 20 {
		if time.Now().After(deadline) {
			t.Fatal("frames were not published")
		}
		time.Sleep(time.Millisecond)
	}
	stop()

	for i, p := range client.publications() {
		if p.topic != "frames" || len(p.payload) != image5x5.Width*image5x5.Height {
			t.Errorf("publication %d = %q with %d bytes", i, p.topic, len(p.payload))
		}
	}
}

func TestFrameSinkForwards(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	defer screen.Fini()
	term, err := termdisplay.New(screen, nil)
	if err != nil {
		t.Fatalf("termdisplay.New() error = %v", err)
	}

	client := &fakeClient{}
	b := NewBridge(client, testConfig(t, "frames"), scrolling.NewBufferedText(1))
	sink, err := NewFrameSink(b, term)
	if err != nil {
		t.Fatalf("NewFrameSink() error = %v", err)
	}

	glyph := font.Character('T')
	if err := sink.Draw(sink.Bounds(), glyph, image.Point{}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	for y := 0; y < image5x5.Height; y++ {
		for x := 0; x < image5x5.Width; x++ {
			want := 0.0
			if glyph.BrightnessAt(x, y) != 0 {
				want = 1
			}
			if got := term.Level(x, y); got != want {
				t.Errorf("Level(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if len(client.publications()) != 1 {
		t.Errorf("published %d frames, want 1", len(client.publications()))
	}

	if err := sink.Halt(); err != nil {
		t.Errorf("Halt() error = %v", err)
	}
	if !strings.Contains(sink.String(), "frames") {
		t.Errorf("String() = %q, want the frames topic", sink.String())
	}
}

func TestNewFrameSinkValidation(t *testing.T) {
	if _, err := NewFrameSink(nil, nil); err == nil {
		t.Error("NewFrameSink(nil) should fail")
	}
	b := NewBridge(&fakeClient{}, testConfig(t, ""), scrolling.NewBufferedText(1))
	if _, err := NewFrameSink(b, &scroll5x5.Dev{}); err != nil {
		t.Errorf("NewFrameSink() with a 5x5 display error = %v", err)
	}
}

func TestSetMessageNotPlaying(t *testing.T) {
	text := scrolling.NewBufferedText(4)
	b := NewBridge(&fakeClient{}, testConfig(t, ""), text)

	if err := b.SetMessage(context.Background(), []byte("idle")); err != nil {
		t.Fatalf("SetMessage() error = %v", err)
	}
	if got := string(text.Message()); got != "idle" {
		t.Errorf("Message() = %q, want %q", got, "idle")
	}
}

func TestPlayTwice(t *testing.T) {
	b, _, stop := setup(t, &fakeClient{}, "")
	defer stop()

	p := scroll5x5.NewPlayer(&scroll5x5.Dev{}, scrolling.NewBufferedText(1), nil)
	if err := b.Play(context.Background(), p); err == nil {
		t.Error("Play() while playing should fail")
	}
}

func TestPlayHoldsWithoutLoop(t *testing.T) {
	client := &fakeClient{}
	cfg := testConfig(t, "frames")
	text := scrolling.NewBufferedText(cfg.Display.Capacity)
	b := NewBridge(client, cfg, text)
	sink, err := NewFrameSink(b, nil)
	if err != nil {
		t.Fatalf("NewFrameSink() error = %v", err)
	}
	p := scroll5x5.NewPlayer(sink, text, &scroll5x5.PlayerOpts{Tick: time.Millisecond, Hold: true})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errC := make(chan error, 1)
	go func() { errC <- b.Play(ctx, p) }()
	waitPlaying(t, b)

	// The empty text finishes within a few ticks
	time.Sleep(50 * time.Millisecond)
	select {
	case err := <-errC:
		t.Fatalf("Play() returned %v before any message", err)
	default:
	}
	held := len(client.publications())

	msgCtx, msgCancel := context.WithTimeout(ctx, Timeout)
	defer msgCancel()
	if err := b.SetMessage(msgCtx, []byte("go")); err != nil {
		t.Fatalf("SetMessage() error = %v", err)
	}

	deadline := time.Now().Add(Timeout)
	for len(client.publications()) < held+scrolling.Steps(2) {
		if time.Now().After(deadline) {
			t.Fatal("frames were not published after the message")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	if err := <-errC; !errors.Is(err, context.Canceled) {
		t.Errorf("Play() error = %v, want %v", err, context.Canceled)
	}
	if got := string(text.Message()); got != "go" {
		t.Errorf("Message() = %q, want %q", got, "go")
	}
}

func TestSetMessageAfterRunReturns(t *testing.T) {
	cfg := testConfig(t, "")
	text := scrolling.NewBufferedText(cfg.Display.Capacity)
	b := NewBridge(&fakeClient{}, cfg, text)
	sink, err := NewFrameSink(b, nil)
	if err != nil {
		t.Fatalf("NewFrameSink() error = %v", err)
	}
	p := scroll5x5.NewPlayer(sink, text, &scroll5x5.PlayerOpts{Tick: time.Millisecond})
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Play has not cleared its player yet
	b.mu.Lock()
	b.player = p
	b.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	start := time.Now()
	if err := b.SetMessage(ctx, []byte("late")); err != nil {
		t.Fatalf("SetMessage() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("SetMessage() took %v", elapsed)
	}
	if got := string(text.Message()); got != "late" {
		t.Errorf("Message() = %q, want %q", got, "late")
	}
}
