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

// Package raster converts lines, circles, rectangles and dots into
// sequences of integer pixel coordinates.
//
// Each shape is produced by a walker: a small state machine which returns
// one point per call to Next until the shape is exhausted. Walkers use
// integer arithmetic only, never allocate while walking, and can be
// abandoned at any time. A walker cannot be restarted; construct a new one
// instead ([Dilation] is the exception, see [Dilation.Reset]).
//
// Walkers do not clip. Apart from [Rectangle], which clamps to the fixed
// canvas, points may fall outside any particular surface and the consumer
// is expected to discard them.
package raster

import (
	"image"
	"iter"
)

// Walker produces a finite sequence of points.
type Walker interface {
	// Next returns the next point of the sequence. The second return value
	// is false once the sequence is exhausted; all further calls also
	// return false.
	Next() (image.Point, bool)
}

// All returns an iterator over the remaining points of w.
// The iterator consumes w and can only be used once.
func All(w Walker) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for {
			p, ok := w.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Collect drains w and returns the points in the order they were produced.
func Collect(w Walker) []image.Point {
	var res []image.Point
	for p := range All(w) {
		res = append(res, p)
	}
	return res
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
