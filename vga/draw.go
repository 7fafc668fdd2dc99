// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package vga

import (
	"context"
	"image"
	"log/slog"

	"seehuhn.de/go/raster"
)

// The drawing methods below return the number of pixel writes which
// landed on the screen. Pixels produced more than once by a walker are
// counted every time.

// Plot draws every point produced by w in colour c.
func (s *Screen) Plot(w raster.Walker, c uint8) int {
	log := Logger()
	trace := log.Enabled(context.Background(), slog.LevelDebug)

	n := 0
	for p := range raster.All(w) {
		if trace {
			log.Debug("plot", "x", p.X, "y", p.Y, "color", c)
		}
		if s.SetPixel(p.X, p.Y, c) {
			n++
		}
	}
	return n
}

// Line draws a line of width 2t+1 from p1 to p2.
func (s *Screen) Line(c uint8, thickness int, p1, p2 image.Point) int {
	Logger().Debug("line", "from", p1, "to", p2, "thickness", thickness)
	return s.Plot(raster.NewLine(thickness, p1, p2), c)
}

// Rect draws the closed box with top-left corner (x, y).
//
// In fill mode the box is clamped to the canvas and filled. In outline mode
// the four sides are drawn as lines whose width is the smallest odd number
// not less than the outline thickness.
func (s *Screen) Rect(c uint8, mode raster.FillMode, x, y, width, height int) int {
	Logger().Debug("rect", "x", x, "y", y, "width", width, "height", height, "mode", mode)
	if mode.IsFill() {
		return s.Plot(raster.NewRectangle(x, y, width, height), c)
	}

	t := mode.Thickness() / 2
	corners := [4]image.Point{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}
	n := 0
	for i, p := range corners {
		n += s.Plot(raster.NewLine(t, p, corners[(i+1)%4]), c)
	}
	return n
}

// Dot draws a filled diamond of the given thickness around p.
func (s *Screen) Dot(c uint8, p image.Point, thickness int) int {
	Logger().Debug("dot", "at", p, "thickness", thickness)
	return s.Plot(raster.NewDilation(p, thickness), c)
}

// Circle draws a circle around center.
//
// In fill mode the disk is filled with horizontal spans. In outline mode
// every boundary pixel is widened to a diamond, giving a ring whose width is
// the smallest odd number not less than the outline thickness.
func (s *Screen) Circle(c uint8, mode raster.FillMode, center image.Point, radius int) int {
	Logger().Debug("circle", "center", center, "radius", radius, "mode", mode)

	circ := raster.NewCircle(center, radius)
	n := 0
	if mode.IsFill() {
		for p := range raster.All(circ) {
			mirror := image.Point{X: 2*center.X - p.X, Y: p.Y}
			n += s.Plot(raster.NewLine(0, p, mirror), c)
		}
		return n
	}

	dot := raster.NewDilation(image.Point{}, mode.Thickness()/2+1)
	for p := range raster.All(circ) {
		dot.Reset()
		n += s.Plot(shifted{dot, p}, c)
	}
	return n
}

// Swatches draws the whole palette as a 16×16 grid of squares with the
// given side length, starting at the top-left corner of the screen.
func (s *Screen) Swatches(size int) int {
	n := 0
	for i := range 256 {
		x := i % 16 * size
		y := i / 16 * size
		n += s.Rect(uint8(i), raster.Fill, x, y, max(size-1, 0), max(size-1, 0))
	}
	return n
}

// shifted translates the points of a walker.
type shifted struct {
	w   raster.Walker
	off image.Point
}

func (s shifted) Next() (image.Point, bool) {
	p, ok := s.w.Next()
	return p.Add(s.off), ok
}
