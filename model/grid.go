package model

import (
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-engine/rules"
)

// Grid is a toroidal board of height rows and width columns, indexed [row][col]
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions.
// Non-positive dimensions are clamped to 1; callers that need to reject them must do so first.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Reset(width, height)
	return g
}

// GetWidth returns the number of columns
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the number of rows
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid and kills every cell, reusing row storage where it can
func (g *Grid) Reset(width, height int) {
	width, height = max(width, 1), max(height, 1)
	g.width = width
	g.height = height

	if cap(g.cells) >= height {
		g.cells = g.cells[:height]
	} else {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if cap(g.cells[i]) >= width {
			g.cells[i] = g.cells[i][:width]
			clear(g.cells[i])
		} else {
			g.cells[i] = make([]bool, width)
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive (true) or dead (false); out of range coordinates are ignored
func (g *Grid) Set(x, y int, alive bool) {
	if g.InBounds(x, y) {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell, false when out of range
func (g *Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

// Toggle inverts a cell and reports whether the coordinates were in range
func (g *Grid) Toggle(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y][x] = !g.cells[y][x]
	return true
}

// Fits reports whether p placed with its top-left corner at (x, y) lies inside the grid
func (g *Grid) Fits(x, y int, p Pattern) bool {
	return x >= 0 && y >= 0 && x+p.Width() <= g.width && y+p.Height() <= g.height
}

// Overlay writes the cells of p starting at (x, y). Cells of a target row outside
// the pattern's column span keep their value. Pattern cells falling outside the grid are dropped.
func (g *Grid) Overlay(x, y int, p Pattern) {
	for dy, row := range p {
		for dx, cell := range row {
			g.Set(x+dx, y+dy, cell)
		}
	}
}

// CountNeighbors counts living cells among the 8 neighbors of (x, y), wrapping at the edges
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + g.height) % g.height
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + g.width) % g.width
			if g.cells[ny][nx] {
				count++
			}
		}
	}
	return count
}

// NextGeneration computes the following generation into a fresh grid. g is only read.
// Rows are split across workers; each worker writes a disjoint band of the new grid.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.width, g.height)
	} else {
		next = NewGrid(g.width, g.height)
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(runtime.NumCPU(), g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := range g.width {
					next.cells[y][x] = rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x])
				}
			}
			return nil
		})
	}

	// workers never return an error
	_ = eg.Wait()

	return next
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Signature encodes every living cell as "{col}:{row}-" in row-major scan order.
// An all-dead grid has the empty signature.
func (g *Grid) Signature() string {
	var sb strings.Builder
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x] {
				continue
			}
			sb.WriteString(strconv.Itoa(x))
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(y))
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for y := range g.height {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}
