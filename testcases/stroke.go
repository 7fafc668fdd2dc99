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

package testcases

import (
	"math"

	"seehuhn.de/go/raster/scene"
)

var strokeCases = []TestCase{
	// one line per octant, from the centre outwards
	{
		Name:   "octants_thin",
		Shapes: star(15, 0, 160, 100, 90, 16),
	},
	{
		Name:   "octants_thick",
		Shapes: star(14, 2, 160, 100, 90, 16),
	},
	{
		Name: "thickness_ramp",
		Shapes: []scene.Shape{
			line(15, 0, 20, 20, 300, 20),
			line(15, 1, 20, 40, 300, 40),
			line(15, 2, 20, 65, 300, 65),
			line(15, 3, 20, 95, 300, 95),
			line(15, 4, 20, 130, 300, 130),
			line(15, 6, 20, 175, 300, 175),
		},
	},
	{
		Name: "vertical",
		Shapes: []scene.Shape{
			line(10, 0, 40, 20, 40, 180),
			line(10, 1, 80, 20, 80, 180),
			line(10, 3, 140, 180, 140, 20),
			line(10, 5, 220, 20, 220, 180),
		},
	},
	{
		Name: "diagonal",
		Shapes: []scene.Shape{
			line(12, 0, 10, 10, 190, 190),
			line(12, 2, 60, 10, 240, 190),
			line(12, 4, 310, 10, 130, 190),
		},
	},
	{
		Name: "shallow_fan",
		Shapes: fan(11, 1, 10, 100, []int{
			-90, -60, -30, -10, -1, 0, 1, 10, 30, 60, 90,
		}),
	},
	{
		Name: "crossing",
		Shapes: []scene.Shape{
			line(9, 3, 20, 30, 300, 170),
			line(12, 3, 20, 170, 300, 30),
			line(14, 1, 160, 10, 160, 190),
		},
	},
	{
		Name: "zero_length",
		Shapes: []scene.Shape{
			line(15, 0, 40, 100, 40, 100),
			line(15, 2, 100, 100, 100, 100),
			line(15, 5, 180, 100, 180, 100),
		},
	},
}

// star returns n lines of the given thickness, from (cx, cy) to points
// evenly spaced on a circle of radius r.
func star(c uint8, thickness, cx, cy, r, n int) []scene.Shape {
	res := make([]scene.Shape, n)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		x := cx + int(math.Round(float64(r)*math.Cos(phi)))
		y := cy + int(math.Round(float64(r)*math.Sin(phi)))
		res[i] = line(c, thickness, cx, cy, x, y)
	}
	return res
}

// fan returns lines from (x, y) to x=310, ending at the given vertical
// offsets from y.
func fan(c uint8, thickness, x, y int, dy []int) []scene.Shape {
	res := make([]scene.Shape, len(dy))
	for i, d := range dy {
		res[i] = line(c, thickness, x, y, 310, y+d)
	}
	return res
}
