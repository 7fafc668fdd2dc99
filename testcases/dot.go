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

var dotCases = []TestCase{
	{
		Name: "sizes",
		Shapes: []scene.Shape{
			dot(15, 20, 100, 0),
			dot(15, 40, 100, 1),
			dot(15, 65, 100, 2),
			dot(15, 95, 100, 4),
			dot(15, 135, 100, 8),
			dot(15, 195, 100, 16),
			dot(15, 270, 100, 32),
		},
	},
	{
		Name: "overlap",
		Shapes: []scene.Shape{
			dot(9, 140, 100, 30),
			dot(10, 180, 100, 30),
			dot(12, 160, 80, 30),
			dot(15, 160, 100, 5),
		},
	},
	{
		Name: "negative_thickness",
		Shapes: []scene.Shape{
			dot(14, 100, 100, -10),
			dot(14, 220, 100, 10),
		},
	},
}
