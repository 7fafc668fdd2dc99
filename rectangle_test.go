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
	"math/rand/v2"
	"slices"
	"testing"
)

func TestRectangleClampsCorner(t *testing.T) {
	pts := Collect(NewRectangle(-5, -5, 10, 10))
	if len(pts) != 11*11 {
		t.Fatalf("got %d points, want %d", len(pts), 11*11)
	}
	if pts[0] != image.Pt(0, 0) {
		t.Errorf("first point %v, want (0,0)", pts[0])
	}
	if last := pts[len(pts)-1]; last != image.Pt(10, 10) {
		t.Errorf("last point %v, want (10,10)", last)
	}
	if !slices.IsSortedFunc(pts, cmpPoint) {
		t.Error("points not in row-major order")
	}
}

func TestRectangleStaysOnCanvas(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for range 200 {
		x := rng.IntN(800) - 400
		y := rng.IntN(600) - 300
		w := rng.IntN(800) - 100
		h := rng.IntN(600) - 100

		r := NewRectangle(x, y, w, h)
		b := r.Bounds()
		n := 0
		for p := range All(r) {
			if p.X < 0 || p.X > CanvasWidth || p.Y < 0 || p.Y > CanvasHeight {
				t.Fatalf("(%d,%d,%d,%d): point %v off canvas", x, y, w, h, p)
			}
			if !p.In(b) {
				t.Fatalf("(%d,%d,%d,%d): point %v outside %v", x, y, w, h, p, b)
			}
			n++
		}
		if n != b.Dx()*b.Dy() {
			t.Errorf("(%d,%d,%d,%d): %d points, want %d", x, y, w, h, n, b.Dx()*b.Dy())
		}
	}
}

func TestRectangleFarEdge(t *testing.T) {
	r := NewRectangle(300, 190, 100, 100)
	want := image.Rect(300, 190, CanvasWidth+1, CanvasHeight+1)
	if b := r.Bounds(); b != want {
		t.Errorf("bounds %v, want %v", b, want)
	}
	if n := len(Collect(r)); n != 21*11 {
		t.Errorf("got %d points, want %d", n, 21*11)
	}

	// away from the far edges the full (w+1)×(h+1) box is produced
	if n := len(Collect(NewRectangle(10, 10, 100, 100))); n != 101*101 {
		t.Errorf("got %d points, want %d", n, 101*101)
	}
}

func TestRectangleDegenerate(t *testing.T) {
	got := Collect(NewRectangle(4, 6, -3, 0))
	if want := []image.Point{{4, 6}}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
