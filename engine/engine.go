// Package engine owns a Game of Life grid and drives it through generations,
// either one step at a time or on a repeating ticker.
//
// An Engine is either Idle or Running. Start moves Idle to Running; Stop,
// extinction, cycle detection, ToggleCell, Resize and Clear move it back.
package engine

import (
	"context"
	"image/color"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/render"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

// DefaultInterval is the run-loop period used when none is given
const DefaultInterval = 100 * time.Millisecond

// Params configures a new Engine
type Params struct {
	Width       int
	Height      int
	CellSize    int
	CellColor   color.Color
	GridVisible bool
	// Interval is the default period for Start; zero means DefaultInterval
	Interval time.Duration
	// UseMemoryPool recycles generation buffers between steps
	UseMemoryPool bool
}

// Option customizes an Engine
type Option func(*Engine)

// WithTicker replaces the ticker used by the run-loop
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(e *Engine) {
		if newTicker != nil {
			e.newTicker = newTicker
		}
	}
}

type runLoop struct {
	cancel context.CancelFunc
}

// Engine simulates one grid
type Engine struct {
	mu sync.Mutex

	grid     *model.Grid
	history  *model.History
	pool     *model.GridPool
	settings render.Settings
	interval time.Duration

	hooks     Hooks
	newTicker func(time.Duration) Ticker
	run       *runLoop // nil while idle

	generation int
	stats      *utils.Stats

	// callbacks queued under mu in event order; one goroutine at a time drains them
	outbox     []func()
	delivering bool
}

// New builds an idle engine with an all-dead grid and draws it once
func New(params Params, hooks Hooks, opts ...Option) (*Engine, error) {
	if params.Width <= 0 || params.Height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[New] %dx%d", params.Width, params.Height)
	}
	interval := params.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	e := &Engine{
		grid:    model.NewGrid(params.Width, params.Height),
		history: model.NewHistory(),
		settings: render.Settings{
			CellSize:    max(params.CellSize, 1),
			CellColor:   params.CellColor,
			GridVisible: params.GridVisible,
		},
		interval:  interval,
		hooks:     hooks,
		newTicker: newTimeTicker,
		stats:     utils.NewStats(),
	}
	if e.settings.CellColor == nil {
		e.settings.CellColor = color.Black
	}
	if params.UseMemoryPool {
		e.pool = model.NewGridPool()
	}
	for _, opt := range opts {
		opt(e)
	}

	e.mu.Lock()
	e.redrawLocked()
	e.unlock()
	return e, nil
}

// unlock releases mu and delivers queued callbacks in the order they were queued.
// If another goroutine (or an outer call on this one) is already delivering, it
// picks up the new callbacks instead, so hooks may re-enter the engine.
func (e *Engine) unlock() {
	if e.delivering {
		e.mu.Unlock()
		return
	}
	e.delivering = true
	for len(e.outbox) > 0 {
		fn := e.outbox[0]
		e.outbox = e.outbox[1:]
		e.mu.Unlock()
		fn()
		e.mu.Lock()
	}
	e.outbox = nil
	e.delivering = false
	e.mu.Unlock()
}

func (e *Engine) redrawLocked() {
	if e.hooks.OnRedraw == nil {
		return
	}
	frame := Frame{Grid: e.grid.Clone(), Settings: e.settings}
	e.outbox = append(e.outbox, func() { e.hooks.OnRedraw(frame) })
}

func (e *Engine) stepTimeLocked(ms int64) {
	if e.hooks.OnStepTime == nil {
		return
	}
	e.outbox = append(e.outbox, func() { e.hooks.OnStepTime(ms) })
}

func (e *Engine) terminateLocked(t Termination) {
	if e.hooks.OnTerminate == nil {
		return
	}
	e.outbox = append(e.outbox, func() { e.hooks.OnTerminate(t) })
}

// replaceGridLocked swaps in an all-dead grid of the given size
func (e *Engine) replaceGridLocked(width, height int) {
	model.GridToPool(e.grid, e.pool)
	if e.pool != nil {
		e.grid = e.pool.Get(width, height)
		return
	}
	e.grid = model.NewGrid(width, height)
}

// Resize discards every cell and reallocates the grid. Invalid sizes leave the engine untouched.
func (e *Engine) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "[Resize] %dx%d", width, height)
	}
	e.mu.Lock()
	defer e.unlock()

	e.stopLocked()
	e.replaceGridLocked(width, height)
	e.redrawLocked()
	return nil
}

// ToggleCell stops any run and inverts the cell at (col, row)
func (e *Engine) ToggleCell(col, row int) error {
	e.mu.Lock()
	defer e.unlock()

	if !e.grid.InBounds(col, row) {
		return errors.Wrapf(ErrOutOfBounds, "[ToggleCell] (%d,%d) on %dx%d grid",
			col, row, e.grid.GetWidth(), e.grid.GetHeight())
	}
	e.stopLocked()
	e.grid.Toggle(col, row)
	e.redrawLocked()
	return nil
}

// PlacePattern stamps p with its top-left corner at (col, row). Patterns that
// would overhang the grid are rejected without touching any cell.
func (e *Engine) PlacePattern(col, row int, p model.Pattern) error {
	e.mu.Lock()
	defer e.unlock()
	return e.placeLocked(col, row, p)
}

func (e *Engine) placeLocked(col, row int, p model.Pattern) error {
	if col < 0 || row < 0 {
		return errors.Wrapf(ErrOutOfBounds, "[PlacePattern] origin (%d,%d)", col, row)
	}
	if !e.grid.Fits(col, row, p) {
		return errors.Wrapf(ErrPatternTooLarge, "[PlacePattern] %dx%d pattern at (%d,%d) on %dx%d grid",
			p.Width(), p.Height(), col, row, e.grid.GetWidth(), e.grid.GetHeight())
	}
	e.grid.Overlay(col, row, p)
	e.redrawLocked()
	return nil
}

// Seed overwrites the whole grid with random noise of the given density
func (e *Engine) Seed(rng *rand.Rand, density float64) error {
	e.mu.Lock()
	defer e.unlock()

	noise := model.RandomPattern(rng, e.grid.GetWidth(), e.grid.GetHeight(), min(max(density, 0), 1))
	return e.placeLocked(0, 0, noise)
}

// Clear stops any run, kills every cell and forgets the run history
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.unlock()

	e.stopLocked()
	e.replaceGridLocked(e.grid.GetWidth(), e.grid.GetHeight())
	e.redrawLocked()
}

// StepOnce computes the next generation and commits it unless the run has
// gone extinct or revisits a generation already seen since Start.
func (e *Engine) StepOnce() Outcome {
	e.mu.Lock()
	defer e.unlock()
	return e.stepLocked()
}

func (e *Engine) stepLocked() Outcome {
	start := time.Now()

	candidate := e.grid.NextGeneration(e.pool)
	population := candidate.CountLivingCells()

	var outcome Outcome
	switch {
	case population == 0:
		model.GridToPool(candidate, e.pool)
		e.replaceGridLocked(e.grid.GetWidth(), e.grid.GetHeight())
		e.stopLocked()
		outcome = OutcomeExtinct
	default:
		sig := candidate.Signature()
		if e.history.Seen(sig) {
			// the repeating generation is never committed
			model.GridToPool(candidate, e.pool)
			e.stopLocked()
			outcome = OutcomeCycle
			break
		}
		e.history.Add(sig)
		model.GridToPool(e.grid, e.pool)
		e.grid = candidate
		e.generation++
		outcome = OutcomeAdvanced
	}

	elapsed := time.Since(start)
	if outcome == OutcomeAdvanced {
		e.stats.Update(e.generation, population, elapsed)
	}

	e.stepTimeLocked(max(elapsed.Milliseconds(), 0))
	e.redrawLocked()
	switch outcome {
	case OutcomeExtinct:
		e.terminateLocked(TerminationExtinct)
	case OutcomeCycle:
		e.terminateLocked(TerminationCycle)
	}
	return outcome
}

// Start begins stepping every interval (the configured default when interval <= 0).
// It returns false and does nothing if a run is already active.
func (e *Engine) Start(interval time.Duration) bool {
	e.mu.Lock()
	defer e.unlock()

	if e.run != nil {
		return false
	}
	if interval <= 0 {
		interval = e.interval
	}

	e.history.Reset()
	e.generation = 0
	e.stats = utils.NewStats()

	ctx, cancel := context.WithCancel(context.Background())
	run := &runLoop{cancel: cancel}
	e.run = run
	go e.loop(ctx, run, e.newTicker(interval))
	return true
}

func (e *Engine) loop(ctx context.Context, run *runLoop, ticker Ticker) {
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			e.mu.Lock()
			// a tick that lost the race with Stop must not step
			if e.run != run {
				e.unlock()
				return
			}
			e.stepLocked()
			e.unlock()
		}
	}
}

// Stop cancels the run-loop, if any, and clears the run history. Once Stop
// returns no further tick of the cancelled run will step.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	if e.run != nil {
		e.run.cancel()
		e.run = nil
	}
	e.history.Reset()
}

// SetCellColor changes the living cell color and redraws
func (e *Engine) SetCellColor(c color.Color) {
	e.mu.Lock()
	defer e.unlock()
	if c == nil {
		c = color.Black
	}
	e.settings.CellColor = c
	e.redrawLocked()
}

// SetCellSize changes the cell edge in pixels (minimum 1) and redraws
func (e *Engine) SetCellSize(px int) {
	e.mu.Lock()
	defer e.unlock()
	e.settings.CellSize = max(px, 1)
	e.redrawLocked()
}

// SetGridVisible toggles grid lines and redraws
func (e *Engine) SetGridVisible(visible bool) {
	e.mu.Lock()
	defer e.unlock()
	e.settings.GridVisible = visible
	e.redrawLocked()
}

// Running reports whether the run-loop is active
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.run != nil
}

// Size returns the grid dimensions in cells
func (e *Engine) Size() (width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.GetWidth(), e.grid.GetHeight()
}

// Alive reports the state of one cell; out of range cells are dead
func (e *Engine) Alive(col, row int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Get(col, row)
}

// Snapshot returns a copy of the current grid and render settings
func (e *Engine) Snapshot() Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Frame{Grid: e.grid.Clone(), Settings: e.settings}
}

// Generation returns the number of generations committed since the last Start
func (e *Engine) Generation() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// HistoryLen returns how many generation signatures the current run has recorded
func (e *Engine) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Len()
}

// Stats returns a copy of the performance counters of the current run
func (e *Engine) Stats() utils.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.stats
}
