//go:build ebiten

package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/engine"
	"github.com/sheikhrachel/go-gol-engine/render"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

const defaultCells = 10

// gui adapts the engine to ebiten.Game
type gui struct {
	engine  *engine.Engine
	surface *render.ImageSurface
	img     *ebiten.Image
	rng     *rand.Rand
	density float64

	mu       sync.Mutex
	frame    engine.Frame
	dirty    bool
	lastStep int64
	message  string
}

func newGUI(config utils.Config, params engine.Params) (*gui, error) {
	w, h := params.Width*params.CellSize, params.Height*params.CellSize
	g := &gui{
		surface: render.NewImageSurface(w, h, color.White),
		img:     ebiten.NewImage(w, h),
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		density: config.RandomDensity,
	}
	hooks := engine.Hooks{
		OnRedraw: func(f engine.Frame) {
			g.mu.Lock()
			g.frame, g.dirty = f, true
			g.mu.Unlock()
		},
		OnStepTime: func(ms int64) {
			g.mu.Lock()
			g.lastStep = ms
			g.mu.Unlock()
		},
		OnTerminate: func(engine.Termination) {
			g.setMessage("Game over")
		},
	}
	var err error
	if g.engine, err = engine.New(params, hooks); err != nil {
		return nil, errors.Wrap(err, "[newGUI] failed to create engine")
	}
	return g, nil
}

func (g *gui) setMessage(msg string) {
	g.mu.Lock()
	g.message = msg
	g.mu.Unlock()
}

// Update handles input. Any edit stops the run-loop inside the engine.
func (g *gui) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.engine.Stop()
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		size := g.engine.Snapshot().Settings.CellSize
		// clicks outside the grid are ignored
		_ = g.engine.ToggleCell(x/size, y/size)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.engine.Running() {
			g.engine.Stop()
		} else if g.engine.Start(0) {
			g.setMessage("")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.engine.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.setMessage("")
		_ = g.engine.Seed(g.rng, g.density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.engine.SetGridVisible(!g.engine.Snapshot().Settings.GridVisible)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.reset()
	}
	return nil
}

// reset restores the default board like the original clear button
func (g *gui) reset() {
	w, _ := g.surface.Size()
	_ = g.engine.Resize(defaultCells, defaultCells)
	g.engine.SetCellSize(w / defaultCells)
	g.engine.SetGridVisible(true)
	g.mu.Lock()
	g.lastStep, g.message = 0, ""
	g.mu.Unlock()
}

// Draw renders the latest frame
func (g *gui) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	if g.dirty {
		g.frame.Project(g.surface)
		g.img.WritePixels(g.surface.Image().Pix)
		g.dirty = false
	}
	status := fmt.Sprintf("%dms %s", g.lastStep, g.message)
	g.mu.Unlock()

	screen.DrawImage(g.img, &ebiten.DrawImageOptions{})
	_, h := g.surface.Size()
	ebitenutil.DebugPrintAt(screen, status, 4, h-16)
}

// Layout returns the logical screen size
func (g *gui) Layout(int, int) (int, int) {
	return g.surface.Size()
}

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	flag.Parse()

	config := utils.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = utils.LoadConfig(*configPath); err != nil {
			log.Fatalf("config: %+v", err)
		}
	}
	params, err := engine.ParamsFromConfig(config)
	if err != nil {
		log.Fatalf("config: %+v", err)
	}

	g, err := newGUI(config, params)
	if err != nil {
		log.Fatalf("engine: %+v", err)
	}
	w, h := g.surface.Size()

	ebiten.SetWindowTitle("go-gol-engine")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
