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

package vga

import "image/color"

// Palette maps the 256 colour indices of the framebuffer to RGB colours.
type Palette [256]color.RGBA

// Layout of the default palette.
const (
	cgaStart  = 0  // 16 CGA colours
	greyStart = 16 // 24-step grey ramp
	cubeStart = 40 // 6×6×6 colour cube
)

var cgaColors = [16]uint32{
	0x000000, 0x0000AA, 0x00AA00, 0x00AAAA,
	0xAA0000, 0xAA00AA, 0xAA5500, 0xAAAAAA,
	0x555555, 0x5555FF, 0x55FF55, 0x55FFFF,
	0xFF5555, 0xFF55FF, 0xFFFF55, 0xFFFFFF,
}

// DefaultPalette returns the palette used when a Screen is created without
// one: the 16 CGA colours, a grey ramp from 8 to 238, and a 6×6×6 colour
// cube with levels 0, 51, ..., 255.
func DefaultPalette() *Palette {
	p := new(Palette)
	for i, rgb := range cgaColors {
		p[cgaStart+i] = color.RGBA{
			R: uint8(rgb >> 16),
			G: uint8(rgb >> 8),
			B: uint8(rgb),
			A: 0xFF,
		}
	}
	for i := range 24 {
		v := uint8(8 + 10*i)
		p[greyStart+i] = color.RGBA{R: v, G: v, B: v, A: 0xFF}
	}
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				p[cubeStart+36*r+6*g+b] = color.RGBA{
					R: uint8(51 * r),
					G: uint8(51 * g),
					B: uint8(51 * b),
					A: 0xFF,
				}
			}
		}
	}
	return p
}

// Index returns the index of the palette entry closest to c, using the
// squared Euclidean distance in RGBA space. Ties go to the lower index.
func (p *Palette) Index(c color.Color) uint8 {
	return uint8(p.Model().Index(c))
}

// RGB returns the index of the palette entry closest to the given colour.
func (p *Palette) RGB(r, g, b uint8) uint8 {
	return p.Index(color.RGBA{R: r, G: g, B: b, A: 0xFF})
}

// DAC returns the palette in the form expected by the VGA DAC data
// register: 256 consecutive (r, g, b) triples with 6 significant bits each.
func (p *Palette) DAC() [768]uint8 {
	var res [768]uint8
	for i, e := range p {
		res[3*i] = e.R >> 2
		res[3*i+1] = e.G >> 2
		res[3*i+2] = e.B >> 2
	}
	return res
}

// Model returns the palette as a color.Model.
func (p *Palette) Model() color.Palette {
	res := make(color.Palette, len(p))
	for i, e := range p {
		res[i] = e
	}
	return res
}
