package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/engine"
	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/render"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

// game bundles the engine with the terminal output it drives
type game struct {
	engine   *engine.Engine
	renderer *render.TerminalRenderer
	rng      *rand.Rand
	density  float64

	mu       sync.Mutex
	lastStep int64
	ended    chan engine.Termination
}

// loadConfig reads the config file, falling back to defaults when it is missing or invalid
func loadConfig(path string) utils.Config {
	config, err := utils.LoadConfig(path)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", errors.Cause(err))
		return utils.DefaultConfig()
	}
	return config
}

// initializeGame builds the engine and seeds it with noise plus a glider
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	params, err := engine.ParamsFromConfig(config)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to build engine params")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &game{
		renderer: &render.TerminalRenderer{Out: out},
		rng:      rand.New(rand.NewPCG(uint64(seed), 0)),
		density:  config.RandomDensity,
		ended:    make(chan engine.Termination, 1),
	}
	hooks := engine.Hooks{
		OnRedraw:    g.draw,
		OnStepTime:  g.recordStepTime,
		OnTerminate: g.terminate,
	}
	if g.engine, err = engine.New(params, hooks); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create engine")
	}

	if err = g.engine.Seed(g.rng, g.density); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to seed grid")
	}
	// a glider only fits grids of at least 3x3
	_ = g.engine.PlacePattern(0, 0, model.Glider())
	return g, nil
}

func (g *game) draw(f engine.Frame) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.renderer.Clear(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
	if err := g.renderer.Display(f.Grid, f.Settings); err != nil {
		fmt.Fprintln(os.Stderr, "Error rendering grid:", err)
	}
	displayGameStatus(g.renderer.Out, f.Grid, g.lastStep)
}

func (g *game) recordStepTime(ms int64) {
	g.mu.Lock()
	g.lastStep = ms
	g.mu.Unlock()
}

func (g *game) terminate(t engine.Termination) {
	select {
	case g.ended <- t:
	default:
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, g *game) {
	w, h := g.engine.Size()
	fmt.Printf("Grid: %dx%d | Initial living cells: %d | Tick: %s | Memory Pool: %v\n",
		w, h, g.engine.Snapshot().Grid.CountLivingCells(), config.FrameRate, config.UseMemoryPool)
	if config.Interactive {
		fmt.Println("Enter: step | r: reseed | c: clear | t COL ROW: toggle | g: grid | q: quit")
	} else {
		fmt.Println("Press Ctrl+C to exit gracefully")
	}
	fmt.Println()
}

// displayGameStatus prints the line under each rendered frame
func displayGameStatus(out io.Writer, grid *model.Grid, lastStepMs int64) {
	living := grid.CountLivingCells()
	density := float64(living) / float64(grid.GetWidth()*grid.GetHeight()) * 100
	fmt.Fprintf(out, "Living: %d | Density: %.1f%% | Generation time: %dms\n", living, density, lastStepMs)
}

// displayFinalStats summarizes the last run
func displayFinalStats(g *game) {
	stats := g.engine.Stats()
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// runAutomatic starts the run-loop and waits for it to end
func runAutomatic(g *game, config utils.Config, sigChan <-chan os.Signal) {
	g.engine.Start(config.FrameRate)
	poll := time.NewTicker(max(config.FrameRate, time.Millisecond))
	defer poll.Stop()

	for {
		select {
		case <-sigChan:
			g.engine.Stop()
			fmt.Println("\n🛑 Shutting down gracefully...")
			return
		case t := <-g.ended:
			fmt.Printf("\n🏁 Game over: %s after %d generations\n", t, g.engine.Generation())
			return
		case <-poll.C:
			if config.MaxGenerations > 0 && g.engine.Generation() >= config.MaxGenerations {
				g.engine.Stop()
				fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
				return
			}
		}
	}
}

// runInteractive reads one command per line from in
func runInteractive(g *game, in io.Reader, sigChan <-chan os.Signal) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	gridVisible := g.engine.Snapshot().Settings.GridVisible
	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			return
		case t := <-g.ended:
			fmt.Printf("🏁 Game over: %s\n", t)
		case line, ok := <-lines:
			if !ok {
				return
			}
			if quit := handleCommand(g, line, &gridVisible); quit {
				return
			}
		}
	}
}

// handleCommand applies one interactive command and reports whether to quit
func handleCommand(g *game, line string, gridVisible *bool) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		g.engine.StepOnce()
		return false
	}
	switch fields[0] {
	case "q":
		return true
	case "r":
		if err := g.engine.Seed(g.rng, g.density); err != nil {
			fmt.Println("Error seeding grid:", err)
		}
	case "c":
		g.engine.Clear()
	case "g":
		*gridVisible = !*gridVisible
		g.engine.SetGridVisible(*gridVisible)
	case "t":
		if len(fields) != 3 {
			fmt.Println("usage: t COL ROW")
			return false
		}
		col, errCol := strconv.Atoi(fields[1])
		row, errRow := strconv.Atoi(fields[2])
		if errCol != nil || errRow != nil {
			fmt.Println("usage: t COL ROW")
			return false
		}
		if err := g.engine.ToggleCell(col, row); err != nil {
			fmt.Println("Error toggling cell:", err)
		}
	default:
		fmt.Printf("unknown command %q\n", fields[0])
	}
	return false
}
