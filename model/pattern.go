package model

import (
	"math/rand/v2"
	"strings"
)

// Pattern is a boolean matrix stamped onto a grid, indexed [row][col]
type Pattern [][]bool

// Width returns the length of the longest row
func (p Pattern) Width() (w int) {
	for _, row := range p {
		w = max(w, len(row))
	}
	return
}

// Height returns the number of rows
func (p Pattern) Height() int {
	return len(p)
}

// PatternFromStrings builds a pattern from rows where 'O', 'o', '#' and '*' mark living cells
func PatternFromStrings(rows ...string) Pattern {
	p := make(Pattern, len(rows))
	for y, row := range rows {
		p[y] = make([]bool, len(row))
		for x, c := range row {
			p[y][x] = strings.ContainsRune("Oo#*", c)
		}
	}
	return p
}

// Glider returns the classic south-east travelling glider
func Glider() Pattern {
	return PatternFromStrings(
		".O.",
		"..O",
		"OOO",
	)
}

// Blinker returns a horizontal period-2 oscillator
func Blinker() Pattern {
	return PatternFromStrings("OOO")
}

// Block returns the 2x2 still life
func Block() Pattern {
	return PatternFromStrings(
		"OO",
		"OO",
	)
}

// Beacon returns the period-2 beacon oscillator
func Beacon() Pattern {
	return PatternFromStrings(
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	)
}

// RandomPattern returns a width x height pattern where each cell is alive with probability density
func RandomPattern(rng *rand.Rand, width, height int, density float64) Pattern {
	p := make(Pattern, max(height, 0))
	for y := range p {
		p[y] = make([]bool, max(width, 0))
		for x := range p[y] {
			p[y][x] = rng.Float64() < density
		}
	}
	return p
}
