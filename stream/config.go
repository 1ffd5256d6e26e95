package stream

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the YAML configuration of the demo.
type Config struct {
	Mqtt   MqttConfig    `yaml:"mqtt"`
	HTTP   HTTPConfig    `yaml:"http"`
	Stream StreamConfig  `yaml:"stream"`
	Strips []StripConfig `yaml:"strips"`
}

// MqttConfig holds the broker connection. An empty URL disables streaming.
type MqttConfig struct {
	URL      string `yaml:"url"`
	ClientID string `yaml:"clientID"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Qos      byte   `yaml:"qos"`
	Topics   struct {
		Stream string `yaml:"stream"`
	} `yaml:"topics"`
}

// HTTPConfig holds the strip preview server settings.
type HTTPConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"corsOrigins"`
	Width       int      `yaml:"width"`
	StripHeight int      `yaml:"stripHeight"`
	CacheSize   int      `yaml:"cacheSize"`
}

// StreamConfig controls the frames sent to the LED strip.
type StreamConfig struct {
	Pixels         int     `yaml:"pixels"`
	FrameRate      float64 `yaml:"frameRate"`
	Speed          float64 `yaml:"speed"`
	AnimationSecs  float64 `yaml:"animationSecs"`
	TransitionSecs float64 `yaml:"transitionSecs"`
	TransitionEase string  `yaml:"transitionEase"`
}

// DefaultConfig returns the configuration used for anything a file leaves out.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.ClientID = "ledcolormap"
	c.Mqtt.Topics.Stream = "home/ledstrip/stream"
	c.HTTP = HTTPConfig{
		Addr:        ":3000",
		Width:       500,
		StripHeight: 64,
		CacheSize:   16,
	}
	c.Stream = StreamConfig{
		Pixels:         500,
		FrameRate:      30,
		Speed:          0.1,
		AnimationSecs:  60,
		TransitionSecs: 5,
		TransitionEase: "inOutQuad",
	}
	return c
}

// LoadConfig reads a YAML config file and fills in defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var c Config
	if err := yaml.NewDecoder(f).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = d.Mqtt.ClientID
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = d.Mqtt.Topics.Stream
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = d.HTTP.Addr
	}
	if c.HTTP.Width == 0 {
		c.HTTP.Width = d.HTTP.Width
	}
	if c.HTTP.StripHeight == 0 {
		c.HTTP.StripHeight = d.HTTP.StripHeight
	}
	if c.HTTP.CacheSize == 0 {
		c.HTTP.CacheSize = d.HTTP.CacheSize
	}
	if c.Stream.Pixels == 0 {
		c.Stream.Pixels = d.Stream.Pixels
	}
	if c.Stream.FrameRate == 0 {
		c.Stream.FrameRate = d.Stream.FrameRate
	}
	if c.Stream.Speed == 0 {
		c.Stream.Speed = d.Stream.Speed
	}
	if c.Stream.AnimationSecs == 0 {
		c.Stream.AnimationSecs = d.Stream.AnimationSecs
	}
	if c.Stream.TransitionSecs == 0 {
		c.Stream.TransitionSecs = d.Stream.TransitionSecs
	}
	if c.Stream.TransitionEase == "" {
		c.Stream.TransitionEase = d.Stream.TransitionEase
	}
}

func (c *Config) validate() error {
	if c.Stream.Pixels < 1 || c.Stream.Pixels > maxPixels {
		return fmt.Errorf("stream.pixels must be in [1,%d], got %d", maxPixels, c.Stream.Pixels)
	}
	if c.Stream.FrameRate < 0 {
		return fmt.Errorf("stream.frameRate must be positive, got %g", c.Stream.FrameRate)
	}
	if c.Mqtt.Qos > 2 {
		return fmt.Errorf("mqtt.qos must be 0, 1 or 2, got %d", c.Mqtt.Qos)
	}
	if c.HTTP.Width < 0 || c.HTTP.StripHeight < 0 || c.HTTP.CacheSize < 0 {
		return fmt.Errorf("http sizes must not be negative")
	}
	return nil
}
