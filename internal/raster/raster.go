// Package raster provides integer line rasterization for wireframe drawing.
package raster

import (
	"image/color"
	"math"
)

// Pixmap is an interface for writing pixels (avoids import cycle).
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c color.NRGBA)
}

// ClipLine clips the segment (x0, y0)-(x1, y1) to the rectangle
// [0, w] x [0, h] using the Liang-Barsky algorithm.
// It returns false if the segment lies entirely outside.
func ClipLine(x0, y0, x1, y1, w, h float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x0},
		{dx, w - x0},
		{-dy, y0},
		{dy, h - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// Line draws a one-pixel-wide line between two pixel centers with
// Bresenham's algorithm. Both endpoints are plotted.
func Line(pm Pixmap, x0, y0, x1, y1 int, c color.NRGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		pm.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// ScreenLine draws a segment given in y-up screen coordinates, where
// y = 0 is the bottom row. The segment is clipped to the pixmap first.
func ScreenLine(pm Pixmap, x0, y0, x1, y1 float64, c color.NRGBA) {
	w := float64(pm.Width() - 1)
	h := float64(pm.Height() - 1)
	if w < 0 || h < 0 {
		return
	}
	x0, y0, x1, y1, ok := ClipLine(x0, y0, x1, y1, w, h)
	if !ok {
		return
	}
	top := pm.Height() - 1
	Line(pm,
		int(math.Round(x0)), top-int(math.Round(y0)),
		int(math.Round(x1)), top-int(math.Round(y1)),
		c)
}

// FrontFacing reports whether the triangle with the given y-up screen
// coordinates is wound counter-clockwise, i.e. faces a viewer looking
// down the negative z axis.
func FrontFacing(x0, y0, x1, y1, x2, y2 float64) bool {
	return (x1-x0)*(y2-y0)-(y1-y0)*(x2-x0) > 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
