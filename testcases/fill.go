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

var fillCases = []TestCase{
	{
		Name: "rect_filled",
		Shapes: []scene.Shape{
			rect(4, 20, 20, 100, 60),
			rect(2, 140, 20, 0, 60),
			rect(1, 160, 20, 1, 1),
			rect(14, 180, 20, 120, 160),
		},
	},
	{
		Name: "rect_outline",
		Shapes: []scene.Shape{
			outline(rect(15, 20, 20, 80, 60), 1),
			outline(rect(15, 120, 20, 80, 60), 2),
			outline(rect(15, 220, 20, 80, 60), 5),
			outline(rect(13, 20, 120, 280, 60), 9),
		},
	},
	{
		Name: "rect_nested",
		Shapes: []scene.Shape{
			rect(1, 10, 10, 300, 180),
			rect(2, 30, 30, 260, 140),
			outline(rect(15, 50, 50, 220, 100), 3),
			rect(4, 70, 70, 180, 60),
		},
	},
	{
		Name: "disk_filled",
		Shapes: []scene.Shape{
			circle(9, 50, 100, 40),
			circle(10, 140, 100, 30),
			circle(11, 210, 100, 20),
			circle(12, 260, 100, 10),
			circle(13, 290, 100, 3),
		},
	},
	{
		Name: "disk_on_rect",
		Shapes: []scene.Shape{
			rect(1, 60, 20, 200, 160),
			circle(14, 160, 100, 70),
			outline(circle(4, 160, 100, 70), 3),
		},
	},
}
