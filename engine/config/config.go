package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no -config flag is given.
const DefaultPath = "viewer.yaml"

var ErrInvalid = errors.New("invalid config")

// Config holds viewer settings. Missing keys keep their Default() value.
type Config struct {
	Window     Window     `yaml:"window"`
	Camera     Camera     `yaml:"camera"`
	Zoom       Zoom       `yaml:"zoom"`
	Render     Render     `yaml:"render"`
	Screenshot Screenshot `yaml:"screenshot"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Camera struct {
	FovDegrees  float64 `yaml:"fov_degrees"`
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
	Sensitivity float64 `yaml:"sensitivity"` // radians per dragged pixel
	Radius      float64 `yaml:"radius"`
	MinRadius   float64 `yaml:"min_radius"`
}

// Zoom is the range of the zoom slider
type Zoom struct {
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	WheelStep float64 `yaml:"wheel_step"`
}

type Render struct {
	ClearColor [4]float64 `yaml:"clear_color"`
	EdgeWidth  float64    `yaml:"edge_width"`
	AntiAlias  bool       `yaml:"antialias"`
}

type Screenshot struct {
	Dir   string  `yaml:"dir"`
	Scale float64 `yaml:"scale"`
}

// Default returns the settings of the reference viewer.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Pyramids",
		},
		Camera: Camera{
			FovDegrees:  30,
			Near:        0.1,
			Far:         100,
			Sensitivity: 0.01,
			Radius:      10,
			MinRadius:   0.1,
		},
		Zoom: Zoom{
			Min:       5,
			Max:       50,
			WheelStep: 0.5,
		},
		Render: Render{
			ClearColor: [4]float64{0, 0, 0, 1},
			EdgeWidth:  1.5,
			AntiAlias:  true,
		},
		Screenshot: Screenshot{
			Dir:   "screenshots",
			Scale: 1,
		},
	}
}

// Load reads path on top of Default(). A missing file is not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot start with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180:
		return fmt.Errorf("%w: fov_degrees %v not in (0, 180)", ErrInvalid, c.Camera.FovDegrees)
	case c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far:
		return fmt.Errorf("%w: near %v / far %v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.MinRadius <= 0:
		return fmt.Errorf("%w: min_radius %v must be positive", ErrInvalid, c.Camera.MinRadius)
	case c.Zoom.Min >= c.Zoom.Max:
		return fmt.Errorf("%w: zoom min %v >= max %v", ErrInvalid, c.Zoom.Min, c.Zoom.Max)
	case c.Screenshot.Scale <= 0:
		return fmt.Errorf("%w: screenshot scale %v must be positive", ErrInvalid, c.Screenshot.Scale)
	}
	return nil
}
