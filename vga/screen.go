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

// Package vga implements a 320×200 indexed-colour pixel surface and draws
// the shapes of package raster onto it.
package vga

import (
	"image"
	"image/color"
)

// Screen dimensions, matching VGA mode 13h.
const (
	Width  = 320
	Height = 200
	Size   = Width * Height
)

// Framebuffer holds one byte per pixel, row by row.
type Framebuffer [Size]uint8

// Screen is a bounds-checked view of a framebuffer.
//
// Writes outside the screen are silently dropped and reads outside the
// screen return colour index 0. Screen implements image.PalettedImage.
type Screen struct {
	fb    *Framebuffer
	pal   *Palette
	model color.Palette
}

// NewScreen returns a screen backed by fb, which the screen owns from now
// on. If fb is nil, a new framebuffer is allocated. If pal is nil,
// [DefaultPalette] is used.
func NewScreen(fb *Framebuffer, pal *Palette) *Screen {
	if fb == nil {
		fb = new(Framebuffer)
	}
	if pal == nil {
		pal = DefaultPalette()
	}
	return &Screen{
		fb:    fb,
		pal:   pal,
		model: pal.Model(),
	}
}

// Clear sets every pixel to colour c.
func (s *Screen) Clear(c uint8) {
	for i := range s.fb {
		s.fb[i] = c
	}
}

// SetPixel sets the pixel at (x, y) to colour c.
// Coordinates outside the screen are ignored; the return value reports
// whether the pixel was written.
func (s *Screen) SetPixel(x, y int, c uint8) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	s.fb[x+y*Width] = c
	return true
}

// Pixel returns the colour index of the pixel at (x, y),
// or 0 if the coordinates are outside the screen.
func (s *Screen) Pixel(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return s.fb[x+y*Width]
}

// Palette returns the palette of the screen.
func (s *Screen) Palette() *Palette {
	return s.pal
}

// Framebuffer returns the underlying pixel storage.
func (s *Screen) Framebuffer() *Framebuffer {
	return s.fb
}

// ColorModel implements the image.Image interface.
func (s *Screen) ColorModel() color.Model {
	return s.model
}

// Bounds implements the image.Image interface.
func (s *Screen) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// At implements the image.Image interface.
func (s *Screen) At(x, y int) color.Color {
	return s.pal[s.Pixel(x, y)]
}

// ColorIndexAt implements the image.PalettedImage interface.
func (s *Screen) ColorIndexAt(x, y int) uint8 {
	return s.Pixel(x, y)
}

// Paletted returns a copy of the screen contents as an *image.Paletted.
func (s *Screen) Paletted() *image.Paletted {
	img := image.NewPaletted(s.Bounds(), s.model)
	copy(img.Pix, s.fb[:])
	return img
}

// Histogram returns the number of pixels of each colour.
func (s *Screen) Histogram() [256]int {
	var res [256]int
	for _, c := range s.fb {
		res[c]++
	}
	return res
}
