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
	"image"
	"math"
	"slices"
	"testing"
)

func TestCircleRadius5(t *testing.T) {
	set := pointSet(NewCircle(image.Pt(0, 0), 5))
	for _, p := range []image.Point{{5, 0}, {0, 5}, {-5, 0}, {0, -5}, {4, 4}, {3, -4}} {
		if !set[p] {
			t.Errorf("missing point %v", p)
		}
	}
}

func TestCircleSymmetry(t *testing.T) {
	reflections := []func(image.Point) image.Point{
		func(p image.Point) image.Point { return image.Pt(-p.X, p.Y) },
		func(p image.Point) image.Point { return image.Pt(p.X, -p.Y) },
		func(p image.Point) image.Point { return image.Pt(p.Y, p.X) },
		func(p image.Point) image.Point { return image.Pt(-p.Y, -p.X) },
	}

	center := image.Pt(17, -3)
	for r := range 40 {
		set := pointSet(NewCircle(center, r))
		for p := range set {
			d := p.Sub(center)
			for i, f := range reflections {
				if q := center.Add(f(d)); !set[q] {
					t.Fatalf("r=%d: reflection %d of %v missing", r, i, p)
				}
			}
		}
	}
}

func TestCircleCountAndDistance(t *testing.T) {
	for r := range 60 {
		c := NewCircle(image.Pt(0, 0), r)
		pts := Collect(c)

		// one radial step per column from x=0 to the diagonal
		steps := 0
		for i, p := range pts {
			if i%8 == 0 {
				steps++
				if p.X < 0 || p.Y < 0 || p.X > p.Y {
					t.Fatalf("r=%d: step %d starts at %v", r, steps, p)
				}
			}
		}
		if len(pts) != 8*steps {
			t.Errorf("r=%d: %d points for %d steps", r, len(pts), steps)
		}

		for _, p := range pts {
			dist := math.Hypot(float64(p.X), float64(p.Y))
			if math.Abs(dist-float64(r)) > 1 {
				t.Errorf("r=%d: point %v has distance %.2f", r, p, dist)
			}
		}
	}
}

func TestCircleZeroRadius(t *testing.T) {
	pts := Collect(NewCircle(image.Pt(4, 2), 0))
	if len(pts) != 8 {
		t.Errorf("got %d points, want 8", len(pts))
	}
	for _, p := range pts {
		if p != image.Pt(4, 2) {
			t.Errorf("unexpected point %v", p)
		}
	}
}

func TestCircleNegativeRadius(t *testing.T) {
	a := Collect(NewCircle(image.Pt(1, 1), -9))
	b := Collect(NewCircle(image.Pt(1, 1), 9))
	if !slices.Equal(a, b) {
		t.Error("negative radius differs from positive radius")
	}
}

func TestCircleConnected(t *testing.T) {
	// the boundary has no gaps under 8-neighbourhood
	for r := 1; r < 50; r++ {
		set := pointSet(NewCircle(image.Pt(0, 0), r))
		for p := range set {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && set[p.Add(image.Pt(dx, dy))] {
						n++
					}
				}
			}
			if n < 2 {
				t.Fatalf("r=%d: point %v has %d neighbours", r, p, n)
			}
		}
	}
}
