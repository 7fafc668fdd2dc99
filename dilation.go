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

// Dilation walks a filled diamond around a point, used to draw thick dots.
//
// For thickness t the diamond contains all points p with
// |p.X-c.X| + |p.Y-c.Y| <= t-1. Rows are scanned from top to bottom,
// each row from left to right.
type Dilation struct {
	center image.Point
	radius int
	cur    image.Point // offset of the next point from the center
}

// NewDilation returns a walker for the diamond of the given thickness.
// The sign of the thickness is ignored; thickness 0 and 1 both give the
// center point only.
func NewDilation(center image.Point, thickness int) *Dilation {
	d := &Dilation{
		center: center,
		radius: max(abs(thickness)-1, 0),
	}
	d.Reset()
	return d
}

// Radius returns the L1 radius of the diamond.
func (d *Dilation) Radius() int {
	return d.radius
}

// Reset rewinds the walker to the first point of the diamond.
func (d *Dilation) Reset() {
	d.cur = image.Point{X: 0, Y: -d.radius}
}

// Next implements the [Walker] interface.
func (d *Dilation) Next() (image.Point, bool) {
	if d.cur.Y > d.radius {
		return image.Point{}, false
	}
	p := d.center.Add(d.cur)

	d.cur.X++
	if d.cur.X > d.radius-abs(d.cur.Y) {
		d.cur.Y++
		d.cur.X = -(d.radius - abs(d.cur.Y))
	}
	return p, true
}
