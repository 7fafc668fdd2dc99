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

// Shapes which extend beyond the edges of the screen.
var largeCases = []TestCase{
	{
		Name: "clipped_rects",
		Shapes: []scene.Shape{
			rect(4, -5, -5, 10, 10),
			rect(2, 300, -20, 50, 40),
			rect(1, -30, 180, 60, 60),
			rect(6, 290, 170, 100, 100),
			outline(rect(15, -10, -10, 340, 220), 5),
		},
	},
	{
		Name: "clipped_lines",
		Shapes: []scene.Shape{
			line(14, 3, -100, -50, 420, 250),
			line(13, 0, -1000, 100, 1000, 100),
			line(12, 2, 160, -500, 160, 700),
		},
	},
	{
		Name: "clipped_circles",
		Shapes: []scene.Shape{
			circle(9, 0, 0, 50),
			outline(circle(10, 319, 199, 60), 2),
			outline(circle(11, 160, 100, 150), 1),
			outline(circle(12, 160, 100, 300), 4),
		},
	},
	{
		Name: "clipped_dots",
		Shapes: []scene.Shape{
			dot(15, 0, 0, 10),
			dot(15, 319, 0, 10),
			dot(15, 0, 199, 10),
			dot(15, 319, 199, 10),
		},
	},
	{
		Name: "grid",
		Shapes: rectangleGrid(10, 16, 20, 20, 2),
	},
}

// rectangleGrid returns rows×cols filled rectangles of the given size,
// separated by gap pixels and cycling through the palette. The grid may be
// larger than the screen.
func rectangleGrid(rows, cols, width, height, gap int) []scene.Shape {
	var res []scene.Shape
	for i := range rows {
		for j := range cols {
			c := uint8((i*cols + j) % 256)
			x := j * (width + gap)
			y := i * (height + gap)
			res = append(res, rect(c, x, y, width-1, height-1))
		}
	}
	return res
}
