// Package render projects grid state onto drawing surfaces.
package render

import (
	"image"
	"image/color"

	"github.com/sheikhrachel/go-gol-engine/model"
)

// DefaultLineColor is used for grid lines when Settings.LineColor is nil
var DefaultLineColor color.Color = color.Gray{Y: 0x80}

// Settings controls how a grid is drawn
type Settings struct {
	CellSize    int
	CellColor   color.Color
	LineColor   color.Color
	GridVisible bool
}

// Surface is a pixel canvas the projection draws on
type Surface interface {
	// Size returns the surface dimensions in pixels
	Size() (width, height int)
	// Clear erases the whole surface
	Clear()
	FillRect(r image.Rectangle, c color.Color)
	// StrokeLine draws a one pixel wide line between both points, inclusive
	StrokeLine(from, to image.Point, c color.Color)
}

// Project redraws s from scratch: clear, one filled square per living cell,
// then grid lines every CellSize pixels across the whole surface when enabled.
func Project(s Surface, g *model.Grid, set Settings) {
	s.Clear()
	size := max(set.CellSize, 1)

	cellColor := set.CellColor
	if cellColor == nil {
		cellColor = color.Black
	}
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			if g.Get(x, y) {
				s.FillRect(image.Rect(x*size, y*size, (x+1)*size, (y+1)*size), cellColor)
			}
		}
	}

	if !set.GridVisible {
		return
	}
	lineColor := set.LineColor
	if lineColor == nil {
		lineColor = DefaultLineColor
	}
	w, h := s.Size()
	for x := 0; x <= w; x += size {
		s.StrokeLine(image.Pt(x, 0), image.Pt(x, h), lineColor)
	}
	for y := 0; y <= h; y += size {
		s.StrokeLine(image.Pt(0, y), image.Pt(w, y), lineColor)
	}
}
