package engine

import (
	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/render"
)

// Termination tells why a run stopped on its own
type Termination int

const (
	// TerminationExtinct means the candidate generation had no living cells
	TerminationExtinct Termination = iota + 1
	// TerminationCycle means the candidate generation repeated one seen earlier in the run
	TerminationCycle
)

func (t Termination) String() string {
	switch t {
	case TerminationExtinct:
		return "extinction"
	case TerminationCycle:
		return "cycle detected"
	default:
		return "unknown"
	}
}

// Outcome is the result of a single step
type Outcome int

const (
	OutcomeAdvanced Outcome = iota
	OutcomeExtinct
	OutcomeCycle
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeExtinct:
		return "extinct"
	case OutcomeCycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// Frame is what a redraw needs. Grid is a private copy owned by the receiver.
type Frame struct {
	Grid     *model.Grid
	Settings render.Settings
}

// Project draws the frame onto s
func (f Frame) Project(s render.Surface) {
	render.Project(s, f.Grid, f.Settings)
}

// Hooks are optional callbacks. They run after the engine lock is released,
// possibly on the run-loop goroutine, so they may call back into the engine.
type Hooks struct {
	OnRedraw    func(Frame)
	OnStepTime  func(ms int64)
	OnTerminate func(Termination)
}
