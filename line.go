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

// StepKind describes how the core Bresenham walk reached its current point.
type StepKind uint8

const (
	// Center marks the first point of a line.
	Center StepKind = iota

	// Straight marks a step along the long axis only.
	Straight

	// Side marks a diagonal step, where both axes advanced.
	Side
)

func (k StepKind) String() string {
	switch k {
	case Center:
		return "center"
	case Straight:
		return "straight"
	case Side:
		return "side"
	default:
		return "StepKind(?)"
	}
}

// brushLen returns the number of points stamped for a step of kind k
// on a line of the given thickness.
func (k StepKind) brushLen(thickness int) int {
	side := 2*thickness + 1
	switch k {
	case Center:
		return side * side
	case Side:
		return 2*side + 1
	default:
		return side
	}
}

// Line walks the pixels of a straight line of width 2t+1.
//
// For thickness 0 this is the classic Bresenham line, one pixel per step
// along the long axis. Thickness 1 already stamps brushes and gives a line
// three pixels wide. For larger thickness every step stamps a brush:
// a square cap at the start point, a cross-section perpendicular to the long
// axis for straight steps, and an elbow covering both the previous and the
// current cross-section for diagonal steps. Consecutive brushes overlap, so
// the resulting set of pixels has no holes. Pixels may be produced more
// than once.
type Line struct {
	start  image.Point // first point, after endpoint normalisation
	octant Octant

	long  int // extent along the long axis (>= 0)
	short int // extent along the short axis (>= 0)

	u, v int // current position, in canonical coordinates
	err  int // doubled Bresenham error term

	thickness int
	kind      StepKind
	brushIdx  int
}

// NewLine returns a walker for the line from p1 to p2.
// Negative thickness is treated as its absolute value.
func NewLine(thickness int, p1, p2 image.Point) *Line {
	start, end, o := Classify(p1, p2)
	long, short := o.Local(end.Sub(start))

	return &Line{
		start:     start,
		octant:    o,
		long:      long,
		short:     short,
		err:       2*short - long,
		thickness: abs(thickness),
		kind:      Center,
	}
}

// Octant returns the slope class of the line.
func (l *Line) Octant() Octant {
	return l.octant
}

// Thickness returns the normalised thickness. The line is 2t+1 pixels wide.
func (l *Line) Thickness() int {
	return l.thickness
}

// Step returns the kind of the core step which produced the point most
// recently returned by Next, for any thickness. Before the first call to
// Next it returns [Center].
func (l *Line) Step() StepKind {
	return l.kind
}

// Next implements the [Walker] interface.
func (l *Line) Next() (image.Point, bool) {
	if l.u > l.long {
		return image.Point{}, false
	}

	if l.thickness == 0 {
		if l.brushIdx > 0 {
			l.advance()
			if l.u > l.long {
				return image.Point{}, false
			}
		}
		l.brushIdx = 1
		return l.at(0, 0), true
	}

	if l.brushIdx >= l.kind.brushLen(l.thickness) {
		l.advance()
		if l.u > l.long {
			return image.Point{}, false
		}
	}
	a, b := l.brushOffset(l.brushIdx)
	l.brushIdx++
	return l.at(a, b), true
}

// advance performs one step of the core Bresenham walk.
func (l *Line) advance() {
	l.brushIdx = 0
	l.u++
	if l.err > 0 {
		l.v++
		l.err -= 2 * l.long
		l.kind = Side
	} else {
		l.kind = Straight
	}
	l.err += 2 * l.short
}

// brushOffset returns the canonical offset of the i-th point of the
// brush for the current step.
func (l *Line) brushOffset(i int) (a, b int) {
	t := l.thickness
	side := 2*t + 1
	switch l.kind {
	case Center:
		return i%side - t, i/side - t
	case Straight:
		return 0, i - t
	default: // Side
		if i <= side {
			// outgoing edge, extended by one pixel to close the outer corner
			return 0, i - t - 1
		}
		// incoming edge, the cross-section one step back
		return -1, i - side - 1 - t
	}
}

// at returns the screen position of a canonical offset from the current
// point of the walk.
func (l *Line) at(a, b int) image.Point {
	return l.start.Add(l.octant.Global(l.u+a, l.v+b))
}
