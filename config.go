package layeranim

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration shared by the demos.
//
//	window:
//	  title: Layer animation
//	  width: 240
//	  height: 480
//	platform:
//	  os: ios
//	  version: "17.0"
//	animation: DefaultAnimation()
//	style:
//	  diameter: 20
//	  ball: "#ff0000"
//	  frame: "#0000ff"
//	  frameWidth: 2
//	debug: false
type Config struct {
	Window    WindowConfig `yaml:"window"`
	Platform  Platform     `yaml:"platform"`
	Animation string       `yaml:"animation,omitempty"`
	Style     StyleConfig  `yaml:"style"`
	Debug     bool         `yaml:"debug,omitempty"`
}

// WindowConfig sizes the demo window (pixels) or terminal area (cells).
type WindowConfig struct {
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// StyleConfig is the YAML form of Style. Colors are "#rrggbb" or
// "#rrggbbaa".
type StyleConfig struct {
	Diameter   float64 `yaml:"diameter,omitempty"`
	Ball       string  `yaml:"ball,omitempty"`
	Frame      string  `yaml:"frame,omitempty"`
	FrameWidth float64 `yaml:"frameWidth,omitempty"`
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("layeranim: config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window:    WindowConfig{Title: "Layer animation", Width: 240, Height: 480},
		Animation: defaultDescription,
	}
}

// LoadConfig reads and validates a YAML config file. Missing fields take
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseConfig(data)
}

// LoadOptionalConfig is LoadConfig, but a missing file (or an empty path)
// yields DefaultConfig.
func LoadOptionalConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := LoadConfig(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// ParseConfig decodes YAML data over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the window size, the animation description and the
// style colors.
func (c Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return &ConfigError{Field: "window", Err: fmt.Errorf("negative size %dx%d", c.Window.Width, c.Window.Height)}
	}
	if strings.TrimSpace(c.Animation) != "" {
		if _, err := Parse(c.Animation); err != nil {
			return &ConfigError{Field: "animation", Err: err}
		}
	}
	if _, err := c.Style.Style(); err != nil {
		return err
	}
	return nil
}

// Style converts the YAML style over DefaultStyle.
func (s StyleConfig) Style() (Style, error) {
	st := DefaultStyle()
	if s.Diameter > 0 {
		st.Diameter = s.Diameter
	}
	if s.FrameWidth > 0 {
		st.FrameWidth = s.FrameWidth
	}
	if s.Ball != "" {
		c, err := ParseColor(s.Ball)
		if err != nil {
			return Style{}, &ConfigError{Field: "style.ball", Err: err}
		}
		st.BallColor = c
	}
	if s.Frame != "" {
		c, err := ParseColor(s.Frame)
		if err != nil {
			return Style{}, &ConfigError{Field: "style.frame", Err: err}
		}
		st.FrameColor = c
	}
	return st, nil
}

// Descriptor returns the configured animation, or nil when it is empty
// ("no animation").
func (c Config) Descriptor() (Descriptor, error) {
	if strings.TrimSpace(c.Animation) == "" {
		return nil, nil
	}
	return Parse(c.Animation)
}

// NewScene builds a scene holding one view named "ball" that fills the
// window, configured from c.
func (c Config) NewScene() (*Scene, *View, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	style, _ := c.Style.Style()
	anim, _ := c.Descriptor()

	view := NewView("ball", Rect{Width: float64(c.Window.Width), Height: float64(c.Window.Height)}, style)
	view.Translator.Platform = c.Platform
	view.Animation = anim

	scene := NewScene()
	scene.AddView(view)
	scene.SetDebugMode(c.Debug)
	return scene, view, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		n = n<<8 | 0xff
	}
	return Color{
		R: float64(n>>24&0xff) / 255,
		G: float64(n>>16&0xff) / 255,
		B: float64(n>>8&0xff) / 255,
		A: float64(n&0xff) / 255,
	}, nil
}
