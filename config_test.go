// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

import (
	"image/color"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("window size = %dx%d, want 640x480", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "the-conrod-application" {
		t.Errorf("title = %q", cfg.Window.Title)
	}
	if !cfg.Window.Vsync {
		t.Error("vsync should default on")
	}
	if cfg.Window.Samples != 4 {
		t.Errorf("samples = %d, want 4", cfg.Window.Samples)
	}

	theme, err := cfg.ResolveTheme()
	if err != nil {
		t.Fatalf("ResolveTheme: %v", err)
	}
	if theme.Background != (color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}) {
		t.Errorf("background = %+v, want grey", theme.Background)
	}
	if theme.Foreground != (color.RGBA{A: 0xff}) {
		t.Errorf("foreground = %+v, want black", theme.Foreground)
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	data := []byte(`
[window]
width = 800
vsync = false

[theme]
background = "#ff0000"
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("width = %d, want 800", cfg.Window.Width)
	}
	if cfg.Window.Vsync {
		t.Error("vsync should be overridden off")
	}
	// Untouched fields keep their defaults.
	if cfg.Window.Height != 480 {
		t.Errorf("height = %d, want default 480", cfg.Window.Height)
	}
	if cfg.Window.Title != "the-conrod-application" {
		t.Errorf("title = %q, want default", cfg.Window.Title)
	}
	if cfg.Theme.Background != "#ff0000" {
		t.Errorf("background = %q", cfg.Theme.Background)
	}
	if cfg.Theme.Foreground != "#000000" {
		t.Errorf("foreground = %q, want default", cfg.Theme.Foreground)
	}
}

func TestParseConfigRejectsBadTOML(t *testing.T) {
	if _, err := ParseConfig([]byte("[window\nwidth=1")); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\"): %v", err)
	}
	if cfg != DefaultConfig() {
		t.Error("empty path should return defaults")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("no/such/file.toml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#808080", want: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}},
		{in: "#000000", want: color.RGBA{A: 0xff}},
		{in: "#fff", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#FF000080", want: color.RGBA{R: 0xff, A: 0x80}},
		{in: "808080", wantErr: true},
		{in: "#80808", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveThemeBadColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.Foreground = "not-a-color"
	if _, err := cfg.ResolveTheme(); err == nil {
		t.Error("expected error for invalid theme color")
	}
}
