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

import (
	"fmt"
	"image"
)

// Octant is the slope class of a line segment whose endpoints have been
// ordered left to right.
//
// Lines are walked in a canonical coordinate system (u, v), where u runs
// along the long axis in the direction of travel and v runs along the short
// axis in the direction the line drifts. In this system every line has a
// slope between 0 and 1, so a single error update rule covers all cases.
// The octant records how canonical offsets map back to screen offsets.
type Octant uint8

// The four slope classes. Screen y grows downwards.
const (
	ShallowDown Octant = iota // |dy| <= |dx|, dy >= 0
	SteepDown                 // |dy| > |dx|, dy >= 0
	ShallowUp                 // |dy| <= |dx|, dy < 0
	SteepUp                   // |dy| > |dx|, dy < 0
)

// Classify orders the endpoints of a segment and determines its octant.
//
// The returned start point is the one with the smaller x coordinate.
// For vertical segments, the start point is the one with the smaller y
// coordinate. Since the order of the arguments never influences the
// result, Classify(p1, p2) and Classify(p2, p1) agree.
func Classify(p1, p2 image.Point) (start, end image.Point, o Octant) {
	if p1.X > p2.X || p1.X == p2.X && p1.Y > p2.Y {
		p1, p2 = p2, p1
	}

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	if abs(dy) > dx {
		o |= SteepDown
	}
	if dy < 0 {
		o |= ShallowUp
	}
	return p1, p2, o
}

// IsSteep reports whether the long axis of the octant is the y axis.
func (o Octant) IsSteep() bool {
	return o&SteepDown != 0
}

// Global maps a canonical offset to a screen offset.
func (o Octant) Global(u, v int) image.Point {
	switch o {
	case ShallowDown:
		return image.Point{X: u, Y: v}
	case SteepDown:
		return image.Point{X: v, Y: u}
	case ShallowUp:
		return image.Point{X: u, Y: -v}
	case SteepUp:
		return image.Point{X: v, Y: -u}
	}
	panic("invalid octant " + o.String())
}

// Local maps a screen offset to canonical coordinates.
// This is the inverse of [Octant.Global].
func (o Octant) Local(d image.Point) (u, v int) {
	switch o {
	case ShallowDown:
		return d.X, d.Y
	case SteepDown:
		return d.Y, d.X
	case ShallowUp:
		return d.X, -d.Y
	case SteepUp:
		return -d.Y, d.X
	}
	panic("invalid octant " + o.String())
}

func (o Octant) String() string {
	switch o {
	case ShallowDown:
		return "shallow-down"
	case SteepDown:
		return "steep-down"
	case ShallowUp:
		return "shallow-up"
	case SteepUp:
		return "steep-up"
	default:
		return fmt.Sprintf("Octant(%d)", uint8(o))
	}
}
