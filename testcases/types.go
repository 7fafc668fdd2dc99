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
	"seehuhn.de/go/raster/scene"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name       string // lowercase a-z and _ only
	Background uint8  // palette index used to clear the screen
	Shapes     []scene.Shape
}

// Scene returns the test case as a scene named "<category>_<name>".
// The scene fill mode is set explicitly, so that rendering does not depend
// on the process-wide default.
func (tc TestCase) Scene(category string) *scene.Scene {
	fill := 0
	return &scene.Scene{
		Name:       category + "_" + tc.Name,
		Background: scene.Index(tc.Background),
		Fill:       &fill,
		Shapes:     tc.Shapes,
	}
}

func line(c uint8, thickness, x1, y1, x2, y2 int) scene.Shape {
	return scene.Shape{
		Kind:      scene.KindLine,
		Color:     scene.Index(c),
		From:      scene.Pt(x1, y1),
		To:        scene.Pt(x2, y2),
		Thickness: thickness,
	}
}

func rect(c uint8, x, y, width, height int) scene.Shape {
	return scene.Shape{
		Kind:  scene.KindRect,
		Color: scene.Index(c),
		From:  scene.Pt(x, y),
		Size:  scene.Pt(width, height),
	}
}

func circle(c uint8, x, y, radius int) scene.Shape {
	return scene.Shape{
		Kind:   scene.KindCircle,
		Color:  scene.Index(c),
		Center: scene.Pt(x, y),
		Radius: radius,
	}
}

func dot(c uint8, x, y, thickness int) scene.Shape {
	return scene.Shape{
		Kind:      scene.KindDot,
		Color:     scene.Index(c),
		At:        scene.Pt(x, y),
		Thickness: thickness,
	}
}

func swatches(size int) scene.Shape {
	return scene.Shape{
		Kind: scene.KindSwatches,
		Size: scene.Pt(size, size),
	}
}

// outline turns a rectangle or circle into an outline of the given
// thickness.
func outline(sh scene.Shape, thickness int) scene.Shape {
	sh.Fill = &thickness
	return sh
}
