package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/tdewolff/squircle"
	"gopkg.in/yaml.v3"
)

// Filename is the name of the optional configuration file looked up by LoadOptional.
const Filename = "squircle.yaml"

// Config represents the squircle.yaml configuration.
type Config struct {
	Width     float64       `yaml:"width"`
	Height    float64       `yaml:"height"`
	Radius    *float64      `yaml:"radius,omitempty"`
	Corners   CornersConfig `yaml:"corners,omitempty"`
	Smoothing *float64      `yaml:"smoothing,omitempty"`

	Fill        string  `yaml:"fill,omitempty"`
	Stroke      string  `yaml:"stroke,omitempty"`
	StrokeWidth float64 `yaml:"stroke-width,omitempty"`

	Border  BorderConfig  `yaml:"border,omitempty"`
	Shadow  ShadowConfig  `yaml:"shadow,omitempty"`
	Outline OutlineConfig `yaml:"outline,omitempty"`

	Resolution float64 `yaml:"resolution,omitempty"`
}

// CornersConfig contains per-corner radii, which take precedence over the uniform radius.
type CornersConfig struct {
	TopLeft     *float64 `yaml:"top-left,omitempty"`
	TopRight    *float64 `yaml:"top-right,omitempty"`
	BottomRight *float64 `yaml:"bottom-right,omitempty"`
	BottomLeft  *float64 `yaml:"bottom-left,omitempty"`
}

// BorderConfig contains the border drawn inside the squircle.
type BorderConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Top    float64 `yaml:"top,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
	Left   float64 `yaml:"left,omitempty"`
	Color  string  `yaml:"color,omitempty"`
}

// ShadowConfig contains the outset box shadow.
type ShadowConfig struct {
	OffsetX float64 `yaml:"offset-x,omitempty"`
	OffsetY float64 `yaml:"offset-y,omitempty"`
	Spread  float64 `yaml:"spread,omitempty"`
	Color   string  `yaml:"color,omitempty"`
}

// OutlineConfig contains the outline drawn outside the squircle.
type OutlineConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Offset float64 `yaml:"offset,omitempty"`
	Color  string  `yaml:"color,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Smoothing:  squircle.Float(squircle.DefaultSmoothing),
		Fill:       "#000000",
		Resolution: 1.0,
	}
}

// Load reads and parses the configuration file at path, filling in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(data)
}

// LoadOptional reads squircle.yaml from dir if present, and returns the defaults otherwise.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, Filename))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse parses YAML configuration data, filling in defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", Filename, err)
	}
	if cfg.Smoothing == nil {
		cfg.Smoothing = squircle.Float(squircle.DefaultSmoothing)
	}
	if cfg.Resolution <= 0.0 {
		cfg.Resolution = 1.0
	}
	return cfg, nil
}

// Request returns the squircle request described by the configuration.
func (cfg *Config) Request() squircle.Request {
	smoothing := squircle.DefaultSmoothing
	if cfg.Smoothing != nil {
		smoothing = *cfg.Smoothing
	}
	return squircle.Request{
		TopLeft:     cfg.Corners.TopLeft,
		TopRight:    cfg.Corners.TopRight,
		BottomRight: cfg.Corners.BottomRight,
		BottomLeft:  cfg.Corners.BottomLeft,
		Radius:      cfg.Radius,
		Smoothing:   smoothing,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}
}

// BorderInsets returns the border widths, where the per-edge widths take precedence over the uniform width.
func (cfg *Config) BorderInsets() squircle.Insets {
	b := cfg.Border
	insets := squircle.UniformInsets(b.Width)
	if b.Top != 0.0 {
		insets.Top = b.Top
	}
	if b.Right != 0.0 {
		insets.Right = b.Right
	}
	if b.Bottom != 0.0 {
		insets.Bottom = b.Bottom
	}
	if b.Left != 0.0 {
		insets.Left = b.Left
	}
	return insets
}

// Margin returns the space needed around the squircle to fit its shadow and outline.
func (cfg *Config) Margin() float64 {
	margin := 0.0
	if cfg.Shadow.Color != "" {
		margin = cfg.Shadow.Spread + math.Max(math.Abs(cfg.Shadow.OffsetX), math.Abs(cfg.Shadow.OffsetY))
	}
	if cfg.Outline.Color != "" && 0.0 < cfg.Outline.Width {
		margin = max(margin, cfg.Outline.Offset+cfg.Outline.Width)
	}
	if cfg.Stroke != "" {
		margin = max(margin, cfg.StrokeWidth/2.0)
	}
	return max(margin, 0.0)
}

// Validate returns an error if the configuration does not describe a valid squircle.
func (cfg *Config) Validate() error {
	if err := cfg.Request().Validate(); err != nil {
		return err
	}
	if cfg.StrokeWidth < 0.0 {
		return fmt.Errorf("stroke width must be non-negative. Received: %v", cfg.StrokeWidth)
	} else if cfg.Shadow.Spread < 0.0 {
		return fmt.Errorf("shadow spread must be non-negative. Received: %v", cfg.Shadow.Spread)
	} else if cfg.Outline.Width < 0.0 {
		return fmt.Errorf("outline width must be non-negative. Received: %v", cfg.Outline.Width)
	}
	insets := cfg.BorderInsets()
	if insets.Top < 0.0 || insets.Right < 0.0 || insets.Bottom < 0.0 || insets.Left < 0.0 {
		return fmt.Errorf("border widths must be non-negative")
	}
	return nil
}
