package utils

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 32, "cell_color": "#ff8800", "show_grid": false}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 10 || cfg.ShowGrid || cfg.CellColor != "#ff8800" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.FrameRate != 100*time.Millisecond {
		t.Fatalf("frame rate = %s, want default", cfg.FrameRate)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"bad json":      `{"width": `,
		"zero width":    `{"width": 0}`,
		"bad color":     `{"cell_color": "blue"}`,
		"bad density":   `{"random_density": 1.5}`,
		"negative tick": `{"frame_rate": -1}`,
	}
	for name, body := range tests {
		if _, err := LoadConfig(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing file: expected error")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#000000", color.RGBA{A: 0xff}, true},
		{"#ff8800", color.RGBA{R: 0xff, G: 0x88, A: 0xff}, true},
		{"#0f0", color.RGBA{G: 0xff, A: 0xff}, true},
		{" #123456 ", color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, true},
		{"123456", color.RGBA{}, false},
		{"#12345", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("ParseHexColor(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
		}
		if tt.ok && got != tt.want {
			t.Fatalf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 10, 10*time.Millisecond)
	if s.AveragePopulation != 10 || s.Population != 10 || s.TotalGenerations != 1 {
		t.Fatalf("after first update: %+v", s)
	}
	if s.GenerationsPerSecond < 99 || s.GenerationsPerSecond > 101 {
		t.Fatalf("gen/sec = %v, want ~100", s.GenerationsPerSecond)
	}
	s.Update(2, 20, 0)
	if math.Abs(s.AveragePopulation-11) > 1e-9 {
		t.Fatalf("moving average = %v, want 11", s.AveragePopulation)
	}
}
