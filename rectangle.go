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

package raster

import "image"

// Size of the canvas rectangles are clamped to.
const (
	CanvasWidth  = 320
	CanvasHeight = 200
)

// Rectangle walks all points of an axis-aligned box, row by row.
//
// The box is closed: a rectangle of width w and height h covers
// (w+1)×(h+1) points. All points lie in [0, CanvasWidth]×[0, CanvasHeight].
type Rectangle struct {
	min, max image.Point // corners of the clamped box, both inclusive
	cur      image.Point
}

// NewRectangle returns a walker for the box with top-left corner (x, y)
// and the given width and height.
//
// The corner is clamped to the canvas, width and height are clamped to
// [0, CanvasWidth] and [0, CanvasHeight], and the far corner is then
// clamped to the canvas as well.
//
// Because of the far-corner clamp, the number of points is
// (w'+1)×(h'+1) where w' and h' are the extents after clamping the far
// corner, not the clamped width and height alone. A box which reaches
// past the right or bottom edge has fewer points than (width+1)×(height+1).
func NewRectangle(x, y, width, height int) *Rectangle {
	x0 := min(max(x, 0), CanvasWidth)
	y0 := min(max(y, 0), CanvasHeight)
	w := min(max(width, 0), CanvasWidth)
	h := min(max(height, 0), CanvasHeight)

	r := &Rectangle{
		min: image.Point{X: x0, Y: y0},
		max: image.Point{X: min(x0+w, CanvasWidth), Y: min(y0+h, CanvasHeight)},
	}
	r.cur = r.min
	return r
}

// Bounds returns the clamped box as a half-open image.Rectangle.
func (r *Rectangle) Bounds() image.Rectangle {
	return image.Rectangle{Min: r.min, Max: r.max.Add(image.Point{X: 1, Y: 1})}
}

// Next implements the [Walker] interface.
func (r *Rectangle) Next() (image.Point, bool) {
	if r.cur.Y > r.max.Y {
		return image.Point{}, false
	}
	p := r.cur

	r.cur.X++
	if r.cur.X > r.max.X {
		r.cur.X = r.min.X
		r.cur.Y++
	}
	return p, true
}
