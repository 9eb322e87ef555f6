// Package config loads the board's settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"VectorBoard/internal/geom"
	"VectorBoard/internal/shapes"
)

// RGB is a color written as a three element array of channels in [0, 1].
type RGB [3]float64

func (c RGB) Color() geom.Color { return geom.Color{R: c[0], G: c[1], B: c[2]} }

// Config holds every tunable setting. The zero value is not usable; start
// from Default.
type Config struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Background RGB     `toml:"background"`
	DrawColor  RGB     `toml:"draw_color"`
	ZoomStep   float64 `toml:"zoom_step"`
	SaveFormat string  `toml:"save_format"`
	Axes       bool    `toml:"axes"`
	Verbose    bool    `toml:"verbose"`
	PDFMargin  float64 `toml:"pdf_margin"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Width:      800,
		Height:     800,
		Background: RGB{1, 1, 1},
		DrawColor:  RGB{0, 0, 0},
		ZoomStep:   1.05,
		SaveFormat: shapes.FormatLegacy.String(),
		PDFMargin:  20,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return finish(cfg, md)
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if !c.Background.Color().Valid() {
		errs = append(errs, fmt.Errorf("background %v has a channel outside [0, 1]", c.Background))
	}
	if !c.DrawColor.Color().Valid() {
		errs = append(errs, fmt.Errorf("draw_color %v has a channel outside [0, 1]", c.DrawColor))
	}
	if !(c.ZoomStep > 1) {
		errs = append(errs, fmt.Errorf("zoom_step %v must be greater than 1", c.ZoomStep))
	}
	if _, err := shapes.ParseFormat(c.SaveFormat); err != nil {
		errs = append(errs, err)
	}
	if c.PDFMargin < 0 {
		errs = append(errs, fmt.Errorf("pdf_margin %v must not be negative", c.PDFMargin))
	}
	return errors.Join(errs...)
}

// Format returns the configured save format. It assumes Validate passed.
func (c Config) Format() shapes.Format {
	f, err := shapes.ParseFormat(c.SaveFormat)
	if err != nil {
		return shapes.FormatLegacy
	}
	return f
}
