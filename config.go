// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import (
	"fmt"
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the window parameters and theme. DefaultConfig matches the
// application's fixed settings; a TOML file can override individual fields.
type Config struct {
	Window WindowConfig `toml:"window"`
	Theme  ThemeConfig  `toml:"theme"`
}

// WindowConfig describes the platform window to open.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	Vsync  bool   `toml:"vsync"`
	// Samples is the multisampling factor. Anything above 1 enables
	// antialiased rasterization of filled shapes.
	Samples int `toml:"samples"`
}

// ThemeConfig holds colors as hex strings ("#rgb", "#rrggbb" or "#rrggbbaa").
type ThemeConfig struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
}

// Theme is a resolved ThemeConfig.
type Theme struct {
	Background color.RGBA
	Foreground color.RGBA
}

// DefaultConfig returns the built-in configuration: a 640x480 vsynced window
// titled "the-conrod-application" with 4x multisampling, a grey canvas and
// black text.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:   640,
			Height:  480,
			Title:   "the-conrod-application",
			Vsync:   true,
			Samples: 4,
		},
		Theme: ThemeConfig{
			Background: "#808080",
			Foreground: "#000000",
		},
	}
}

// LoadConfig reads a TOML config file, applying it over the defaults. An
// empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML over the default configuration, so absent fields
// keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// ResolveTheme parses the theme's color strings.
func (c Config) ResolveTheme() (Theme, error) {
	bg, err := ParseHexColor(c.Theme.Background)
	if err != nil {
		return Theme{}, fmt.Errorf("theme background: %w", err)
	}
	fg, err := ParseHexColor(c.Theme.Foreground)
	if err != nil {
		return Theme{}, fmt.Errorf("theme foreground: %w", err)
	}
	return Theme{Background: bg, Foreground: fg}, nil
}

// ParseHexColor parses "#rgb", "#rrggbb" and "#rrggbbaa" color strings.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q: must start with '#'", s)
	}
	hex := s[1:]
	nib := func(c byte) (uint8, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		}
		return 0, false
	}
	byteAt := func(i int) (uint8, bool) {
		hi, ok1 := nib(hex[i])
		lo, ok2 := nib(hex[i+1])
		return hi<<4 | lo, ok1 && ok2
	}

	var col color.RGBA
	col.A = 0xff
	switch len(hex) {
	case 3:
		for i, dst := range []*uint8{&col.R, &col.G, &col.B} {
			v, ok := nib(hex[i])
			if !ok {
				return color.RGBA{}, fmt.Errorf("color %q: invalid hex digit", s)
			}
			*dst = v<<4 | v
		}
	case 6, 8:
		for i, dst := range []*uint8{&col.R, &col.G, &col.B} {
			v, ok := byteAt(i * 2)
			if !ok {
				return color.RGBA{}, fmt.Errorf("color %q: invalid hex digit", s)
			}
			*dst = v
		}
		if len(hex) == 8 {
			v, ok := byteAt(6)
			if !ok {
				return color.RGBA{}, fmt.Errorf("color %q: invalid hex digit", s)
			}
			col.A = v
		}
	default:
		return color.RGBA{}, fmt.Errorf("color %q: want 3, 6 or 8 hex digits", s)
	}
	return col, nil
}
