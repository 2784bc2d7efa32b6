package render

import (
	"bufio"
	"io"

	"github.com/sheikhrachel/go-gol-engine/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
	gridPosDot   = " ·"

	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer draws grids as text, two columns per cell
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid to the terminal. With GridVisible dead cells are dotted.
func (r *TerminalRenderer) Display(g *model.Grid, set Settings) error {
	w := bufio.NewWriter(r.Out)
	empty := gridPosEmpty
	if set.GridVisible {
		empty = gridPosDot
	}
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			if g.Get(x, y) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(empty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClear)
	return err
}
