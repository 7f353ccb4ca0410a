package config

import (
	"fmt"
	"math"

	"PaintBoard/internal/state"

	"github.com/BurntSushi/toml"
)

// Config holds the board settings read from paintboard.toml.
type Config struct {
	// Canvas size in device-independent pixels; the board never shrinks below it.
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`

	Color          string   `toml:"color"`
	StrokeWidth    float32  `toml:"stroke_width"`
	MinStrokeWidth float32  `toml:"min_stroke_width"`
	MaxStrokeWidth float32  `toml:"max_stroke_width"`
	Palette        []string `toml:"palette"`

	ExportName string `toml:"export_name"`
	LogLevel   string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:          1024,
		Height:         768,
		Background:     "white",
		Color:          "black",
		StrokeWidth:    1,
		MinStrokeWidth: 1,
		MaxStrokeWidth: 50,
		Palette:        []string{"black", "red", "green", "blue", "yellow"},
		ExportName:     "drawing.png",
		LogLevel:       "info",
	}
}

// Load decodes path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("could not load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func finitePositive(v float32) bool {
	f := float64(v)
	return v > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Validate checks sizes, widths and colours.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas %dx%d: %w", c.Width, c.Height, state.ErrInvalidArgument)
	}
	if !finitePositive(c.MinStrokeWidth) || !finitePositive(c.MaxStrokeWidth) || !finitePositive(c.StrokeWidth) {
		return fmt.Errorf("stroke widths must be positive: %w", state.ErrInvalidArgument)
	}
	if c.MinStrokeWidth > c.StrokeWidth || c.StrokeWidth > c.MaxStrokeWidth {
		return fmt.Errorf("stroke width %.1f outside [%.1f, %.1f]: %w",
			c.StrokeWidth, c.MinStrokeWidth, c.MaxStrokeWidth, state.ErrInvalidArgument)
	}
	if _, err := state.ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := state.ParseColor(c.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("empty palette: %w", state.ErrInvalidArgument)
	}
	for _, p := range c.Palette {
		if _, err := state.ParseColor(p); err != nil {
			return fmt.Errorf("palette: %w", err)
		}
	}
	if c.ExportName == "" {
		return fmt.Errorf("empty export name: %w", state.ErrInvalidArgument)
	}
	return nil
}
