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

import "seehuhn.de/go/raster/scene"

var circleCases = []TestCase{
	{
		Name: "radii",
		Shapes: []scene.Shape{
			outline(circle(15, 30, 100, 0), 1),
			outline(circle(15, 50, 100, 1), 1),
			outline(circle(15, 70, 100, 2), 1),
			outline(circle(15, 95, 100, 5), 1),
			outline(circle(15, 130, 100, 10), 1),
			outline(circle(15, 190, 100, 25), 1),
			outline(circle(15, 270, 100, 40), 1),
		},
	},
	{
		Name:   "concentric",
		Shapes: rings(160, 100, 95, 6, 1),
	},
	{
		Name: "ring_thickness",
		Shapes: []scene.Shape{
			outline(circle(10, 50, 60, 35), 1),
			outline(circle(11, 160, 60, 35), 2),
			outline(circle(12, 270, 60, 35), 4),
			outline(circle(13, 100, 145, 40), 6),
			outline(circle(14, 220, 145, 40), 10),
		},
	},
	{
		Name: "negative_radius",
		Shapes: []scene.Shape{
			outline(circle(9, 100, 100, -40), 1),
			circle(12, 220, 100, -40),
		},
	},
}

// rings returns concentric outline circles around (cx, cy) with radii
// r, r-step, r-2*step, ... down to step, cycling through the bright colours.
func rings(cx, cy, r, step, thickness int) []scene.Shape {
	var res []scene.Shape
	c := uint8(9)
	for ; r > 0; r -= step {
		res = append(res, outline(circle(c, cx, cy, r), thickness))
		c++
		if c > 15 {
			c = 9
		}
	}
	return res
}
