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

// Package proof writes the contents of a screen to PNG and PDF files.
package proof

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"maps"
	"os"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/raster/vga"
)

// WritePNG writes img as a PNG, with every pixel enlarged to a
// scale×scale square. Scale values below 1 are treated as 1.
func WritePNG(w io.Writer, img image.Image, scale int) error {
	scale = max(scale, 1)
	if scale == 1 {
		if s, ok := img.(*vga.Screen); ok {
			img = s.Paletted()
		}
		return png.Encode(w, img)
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return png.Encode(w, dst)
}

// SavePNG writes img to the file at path, see [WritePNG].
func SavePNG(path string, img image.Image, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := WritePNG(f, img, scale); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	vga.Logger().Info("wrote PNG", "path", path, "scale", scale)
	return nil
}

// SavePDF writes the screen to a single-page PDF file, with one pixel
// taking up scale×scale PDF units. Pixels are drawn as filled rectangles
// in shades of grey, using the luminance of their palette colour.
func SavePDF(path string, s *vga.Screen, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	w := float64(vga.Width) * scale
	h := float64(vga.Height) * scale

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, screen origin is top-left.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, h})

	outlines := Outlines(s)
	pal := s.Palette()
	for _, c := range slices.Sorted(maps.Keys(outlines)) {
		grey := color.GrayModel.Convert(pal[c]).(color.Gray)
		page.SetFillColor(pdfcolor.DeviceGray(float64(grey.Y) / 255))

		p := outlines[c]
		coordIdx := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(p.Coords[coordIdx].X, p.Coords[coordIdx].Y)
				coordIdx++
			case path.CmdLineTo:
				page.LineTo(p.Coords[coordIdx].X, p.Coords[coordIdx].Y)
				coordIdx++
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	vga.Logger().Info("wrote PDF", "path", path, "scale", scale)
	return nil
}

// Outlines returns, for every colour present on the screen, a path made of
// one closed rectangle per horizontal run of pixels with that colour.
// Coordinates are in screen pixels.
func Outlines(s *vga.Screen) map[uint8]*path.Data {
	res := make(map[uint8]*path.Data)
	for y := range vga.Height {
		x0 := 0
		for x := 1; x <= vga.Width; x++ {
			c := s.Pixel(x0, y)
			if x < vga.Width && s.Pixel(x, y) == c {
				continue
			}

			p := res[c]
			if p == nil {
				p = &path.Data{}
				res[c] = p
			}
			x0f, x1f, yf := float64(x0), float64(x), float64(y)
			p.MoveTo(vec.Vec2{X: x0f, Y: yf}).
				LineTo(vec.Vec2{X: x1f, Y: yf}).
				LineTo(vec.Vec2{X: x1f, Y: yf + 1}).
				LineTo(vec.Vec2{X: x0f, Y: yf + 1}).
				Close()
			x0 = x
		}
	}
	return res
}
