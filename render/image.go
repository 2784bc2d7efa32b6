package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ImageSurface is a Surface backed by an in-memory RGBA image
type ImageSurface struct {
	img        *image.RGBA
	background color.Color
}

// NewImageSurface allocates a width x height surface cleared to background.
// A nil background means transparent.
func NewImageSurface(width, height int, background color.Color) *ImageSurface {
	if background == nil {
		background = color.Transparent
	}
	s := &ImageSurface{
		img:        image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		background: background,
	}
	s.Clear()
	return s
}

// Image exposes the backing image
func (s *ImageSurface) Image() *image.RGBA { return s.img }

func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

func (s *ImageSurface) FillRect(r image.Rectangle, c color.Color) {
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// StrokeLine rasterizes with Bresenham; pixels off the image are skipped
func (s *ImageSurface) StrokeLine(from, to image.Point, c color.Color) {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}
	x, y := from.X, from.Y
	e := dx + dy
	for {
		if (image.Point{X: x, Y: y}).In(s.img.Bounds()) {
			s.img.Set(x, y, c)
		}
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
