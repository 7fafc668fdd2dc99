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

var precisionCases = []TestCase{
	// lines on and next to the octant boundaries
	{
		Name: "octant_boundaries",
		Shapes: []scene.Shape{
			line(15, 0, 10, 10, 100, 100),
			line(14, 0, 10, 20, 100, 111),
			line(13, 0, 20, 10, 111, 100),
			line(12, 0, 220, 10, 130, 100),
			line(11, 0, 220, 20, 129, 111),
			line(10, 0, 230, 10, 139, 100),
			line(9, 0, 10, 150, 300, 150),
			line(9, 0, 300, 160, 10, 160),
			line(9, 0, 310, 10, 310, 190),
		},
	},
	{
		Name: "shallow_slopes",
		Shapes: []scene.Shape{
			line(15, 0, 10, 20, 310, 21),
			line(15, 0, 10, 40, 310, 42),
			line(15, 0, 10, 60, 310, 63),
			line(15, 1, 10, 90, 310, 91),
			line(15, 1, 10, 120, 310, 122),
			line(15, 2, 310, 150, 10, 153),
			line(15, 2, 10, 180, 310, 177),
		},
	},
	{
		Name: "steep_slopes",
		Shapes: []scene.Shape{
			line(15, 0, 20, 10, 21, 190),
			line(15, 0, 50, 10, 52, 190),
			line(15, 1, 90, 10, 91, 190),
			line(15, 1, 130, 10, 132, 190),
			line(15, 2, 170, 190, 173, 10),
			line(15, 2, 220, 10, 217, 190),
		},
	},
	{
		Name: "single_pixels",
		Shapes: []scene.Shape{
			line(15, 0, 20, 20, 20, 20),
			rect(15, 40, 20, 0, 0),
			dot(15, 60, 20, 1),
			outline(circle(15, 80, 20, 0), 1),
			circle(15, 100, 20, 0),
		},
	},
}
