package model

import (
	"math/rand/v2"
	"testing"
)

func TestPatternDimensions(t *testing.T) {
	tests := []struct {
		name string
		p    Pattern
		w, h int
	}{
		{"glider", Glider(), 3, 3},
		{"blinker", Blinker(), 3, 1},
		{"block", Block(), 2, 2},
		{"beacon", Beacon(), 4, 4},
		{"ragged", PatternFromStrings("O", "OOO", ".."), 3, 3},
		{"empty", Pattern{}, 0, 0},
	}
	for _, tt := range tests {
		if tt.p.Width() != tt.w || tt.p.Height() != tt.h {
			t.Fatalf("%s: %dx%d, want %dx%d", tt.name, tt.p.Width(), tt.p.Height(), tt.w, tt.h)
		}
	}
}

func TestRandomPatternDensityBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	none := RandomPattern(rng, 8, 6, 0)
	all := RandomPattern(rng, 8, 6, 1)
	for y := range 6 {
		for x := range 8 {
			if none[y][x] {
				t.Fatalf("density 0 produced a living cell at (%d,%d)", x, y)
			}
			if !all[y][x] {
				t.Fatalf("density 1 produced a dead cell at (%d,%d)", x, y)
			}
		}
	}
}

func TestRandomPatternIsDeterministicPerSeed(t *testing.T) {
	a := RandomPattern(rand.New(rand.NewPCG(7, 0)), 10, 10, 0.3)
	b := RandomPattern(rand.New(rand.NewPCG(7, 0)), 10, 10, 0.3)
	ga, gb := NewGrid(10, 10), NewGrid(10, 10)
	ga.Overlay(0, 0, a)
	gb.Overlay(0, 0, b)
	if !ga.Equal(gb) {
		t.Fatalf("same seed produced different patterns")
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory()
	if h.Seen("") || h.Len() != 0 {
		t.Fatalf("new history is not empty")
	}
	h.Add("1:1-")
	h.Add("2:1-")
	if !h.Seen("1:1-") || !h.Seen("2:1-") || h.Seen("3:1-") {
		t.Fatalf("unexpected membership")
	}
	if got := h.Signatures(); len(got) != 2 || got[0] != "1:1-" || got[1] != "2:1-" {
		t.Fatalf("signatures = %v", got)
	}
	h.Reset()
	if h.Seen("1:1-") || h.Len() != 0 {
		t.Fatalf("reset kept signatures")
	}
}
