package remote

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"
)

// Defaults applied by Config.Validate.
const (
	DefaultClientID     = "scroll5x5"
	DefaultMessageTopic = "scroll5x5/message"
	DefaultCapacity     = 64
	DefaultColour       = "#ff0000"
	DefaultTick         = 60 * time.Millisecond
)

// Topics are the MQTT topics used by a Bridge.
type Topics struct {
	Message string `yaml:"message"` // Incoming text to scroll
	Frames  string `yaml:"frames"`  // Outgoing frames; empty disables publishing
}

// Mqtt is the broker configuration.
type Mqtt struct {
	URL      string `yaml:"url"`
	ClientID string `yaml:"clientID"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Topics   Topics `yaml:"topics"`
}

// Display is the playback configuration.
type Display struct {
	Tick     time.Duration `yaml:"tick"`
	Loop     bool          `yaml:"loop"`
	Capacity int           `yaml:"capacity"` // Longest message accepted, in characters
	Colour   string        `yaml:"colour"`
}

// Config is the configuration of an MQTT driven scroller.
type Config struct {
	Mqtt    Mqtt    `yaml:"mqtt"`
	Display Display `yaml:"display"`
}

// LoadConfig reads and validates the YAML configuration at path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("remote: failed to open config: %w", err)
	}
	defer f.Close()

	cfg := &Config{}
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("remote: failed to decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig parses and validates a YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("remote: failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks c and fills in defaults for the fields left empty.
func (c *Config) Validate() error {
	if c.Mqtt.URL == "" {
		return errors.New("remote: mqtt.url is required")
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = DefaultClientID
	}
	if c.Mqtt.Topics.Message == "" {
		c.Mqtt.Topics.Message = DefaultMessageTopic
	}

	switch {
	case c.Display.Tick < 0:
		return fmt.Errorf("remote: display.tick must not be negative, got %v", c.Display.Tick)
	case c.Display.Tick == 0:
		c.Display.Tick = DefaultTick
	}
	switch {
	case c.Display.Capacity < 0:
		return fmt.Errorf("remote: display.capacity must not be negative, got %d", c.Display.Capacity)
	case c.Display.Capacity == 0:
		c.Display.Capacity = DefaultCapacity
	}

	if c.Display.Colour == "" {
		c.Display.Colour = DefaultColour
	}
	if _, err := colorful.Hex(c.Display.Colour); err != nil {
		return fmt.Errorf("remote: invalid display.colour %q: %w", c.Display.Colour, err)
	}
	return nil
}
