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

var complexCases = []TestCase{
	{
		// palette, a thin line and a filled circle on a dark grey screen
		Name:       "demo",
		Background: 18,
		Shapes: []scene.Shape{
			swatches(6),
			line(5, 0, 100, 100, 200, 110),
			circle(9, 200, 40, 30),
		},
	},
	{
		Name:   "palette",
		Shapes: []scene.Shape{swatches(12)},
	},
	{
		Name:   "target",
		Shapes: target(160, 100, 90, 10),
	},
	{
		Name:       "house",
		Background: 1,
		Shapes: []scene.Shape{
			rect(2, 0, 160, 319, 39),
			rect(6, 90, 90, 140, 80),
			outline(rect(0, 90, 90, 140, 80), 2),
			line(4, 2, 80, 90, 160, 30),
			line(4, 2, 160, 30, 240, 90),
			rect(8, 145, 130, 30, 40),
			rect(11, 110, 105, 20, 20),
			rect(11, 190, 105, 20, 20),
			circle(14, 280, 30, 18),
			dot(15, 40, 30, 3),
			dot(15, 60, 50, 2),
			dot(15, 20, 70, 2),
		},
	},
}

// target returns filled disks of decreasing radius around (cx, cy),
// alternating between red and white.
func target(cx, cy, r, step int) []scene.Shape {
	var res []scene.Shape
	for i := 0; r > 0; i++ {
		c := uint8(15)
		if i%2 == 0 {
			c = 4
		}
		res = append(res, circle(c, cx, cy, r))
		r -= step
	}
	return res
}
