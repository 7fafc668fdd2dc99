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

// Circle walks the boundary pixels of a circle using the midpoint
// algorithm.
//
// The walk computes one point (x, y) of the arc between 12 o'clock and the
// 45° diagonal per radial step and emits its eight reflections before
// advancing. Every radial step therefore yields exactly 8 points. Points
// on the axes and on the diagonals are produced more than once.
type Circle struct {
	center image.Point
	x, y   int
	refl   int // index of the next reflection, 0-7
	d      int // midpoint decision variable
}

// NewCircle returns a walker for the circle with the given center and
// radius. The sign of the radius is ignored. A circle of radius 0 consists
// of the center point only.
func NewCircle(center image.Point, radius int) *Circle {
	r := abs(radius)
	return &Circle{
		center: center,
		y:      r,
		d:      3 - 2*r,
	}
}

// Next implements the [Walker] interface.
func (c *Circle) Next() (image.Point, bool) {
	if c.x > c.y {
		return image.Point{}, false
	}
	if c.refl > 7 {
		c.advance()
		if c.x > c.y {
			return image.Point{}, false
		}
	}
	p := c.reflect(c.refl)
	c.refl++
	return c.center.Add(p), true
}

func (c *Circle) advance() {
	c.refl = 0
	if c.d < 0 {
		c.d += 4*c.x + 6
	} else {
		c.d += 4*(c.x-c.y) + 10
		c.y--
	}
	c.x++
}

// reflect maps the current first-octant point into octant i.
func (c *Circle) reflect(i int) image.Point {
	x, y := c.x, c.y
	switch i {
	case 0:
		return image.Point{X: x, Y: y}
	case 1:
		return image.Point{X: y, Y: x}
	case 2:
		return image.Point{X: y, Y: -x}
	case 3:
		return image.Point{X: x, Y: -y}
	case 4:
		return image.Point{X: -x, Y: -y}
	case 5:
		return image.Point{X: -y, Y: -x}
	case 6:
		return image.Point{X: -y, Y: x}
	default:
		return image.Point{X: -x, Y: y}
	}
}
