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

package scene

import (
	"seehuhn.de/go/raster/vga"
)

// defaultSwatchSize is the swatch size used when a swatches shape has no
// size.
const defaultSwatchSize = 6

// Render clears the screen to the background colour and draws the shapes
// of sc in order. It returns the number of pixel writes which landed on
// the screen.
func Render(sc *Scene, s *vga.Screen) (int, error) {
	if err := sc.Validate(); err != nil {
		return 0, err
	}

	pal := s.Palette()
	s.Clear(sc.Background.Resolve(pal))

	n := 0
	for i, sh := range sc.Shapes {
		c := sh.Color.Resolve(pal)
		switch sh.Kind {
		case KindLine:
			n += s.Line(c, sh.Thickness, sh.From.Image(), sh.To.Image())
		case KindRect:
			n += s.Rect(c, sc.FillMode(i), sh.From[0], sh.From[1], sh.Size[0], sh.Size[1])
		case KindCircle:
			n += s.Circle(c, sc.FillMode(i), sh.Center.Image(), sh.Radius)
		case KindDot:
			n += s.Dot(c, sh.At.Image(), sh.Thickness)
		case KindSwatches:
			size := defaultSwatchSize
			if sh.Size != nil {
				size = sh.Size[0]
			}
			n += s.Swatches(size)
		}
	}

	vga.Logger().Debug("scene rendered", "name", sc.Name, "shapes", len(sc.Shapes), "pixels", n)
	return n, nil
}
