package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-gol-engine/utils"
)

func newTestGame(t *testing.T) (*game, *bytes.Buffer) {
	t.Helper()
	config := utils.DefaultConfig()
	config.Seed = 11
	config.RandomDensity = 0
	var out bytes.Buffer
	g, err := initializeGame(config, &out)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	return g, &out
}

func TestInitializeGamePlacesGlider(t *testing.T) {
	g, out := newTestGame(t)
	if n := g.engine.Snapshot().Grid.CountLivingCells(); n != 5 {
		t.Fatalf("living = %d, want the 5 glider cells", n)
	}
	if !strings.Contains(out.String(), "Living: 5") {
		t.Fatalf("status line missing from output:\n%s", out.String())
	}
}

func TestHandleCommand(t *testing.T) {
	g, _ := newTestGame(t)
	gridVisible := true

	if handleCommand(g, "c", &gridVisible) {
		t.Fatalf("clear asked to quit")
	}
	if g.engine.Snapshot().Grid.CountLivingCells() != 0 {
		t.Fatalf("clear left cells")
	}

	handleCommand(g, "t 3 4", &gridVisible)
	if !g.engine.Alive(3, 4) {
		t.Fatalf("toggle command did not set cell")
	}
	handleCommand(g, "t 3", &gridVisible)
	handleCommand(g, "t 99 99", &gridVisible)

	handleCommand(g, "g", &gridVisible)
	if gridVisible || g.engine.Snapshot().Settings.GridVisible {
		t.Fatalf("grid command did not hide lines")
	}

	// a lone cell dies on the next step
	handleCommand(g, "", &gridVisible)
	if g.engine.Snapshot().Grid.CountLivingCells() != 0 {
		t.Fatalf("step command did not advance")
	}

	if !handleCommand(g, "q", &gridVisible) {
		t.Fatalf("quit command ignored")
	}
}
