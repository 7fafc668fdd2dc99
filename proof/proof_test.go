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

package proof

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/vga"
)

func testScreen() *vga.Screen {
	s := vga.NewScreen(nil, nil)
	s.Clear(0)
	s.Rect(4, raster.Fill, 10, 5, 2, 0) // three red pixels on row 5
	return s
}

func TestWritePNG(t *testing.T) {
	s := testScreen()
	for _, scale := range []int{0, 1, 3} {
		buf := &bytes.Buffer{}
		require.NoError(t, WritePNG(buf, s, scale))

		img, err := png.Decode(buf)
		require.NoError(t, err)

		k := max(scale, 1)
		assert.Equal(t, image.Rect(0, 0, vga.Width*k, vga.Height*k), img.Bounds())

		red := color.RGBAModel.Convert(img.At(10*k, 5*k))
		assert.Equal(t, color.RGBA{R: 0xAA, A: 0xFF}, red, "scale %d", scale)
		black := color.RGBAModel.Convert(img.At(13*k, 5*k))
		assert.Equal(t, color.RGBA{A: 0xFF}, black, "scale %d", scale)
	}
}

func TestOutlines(t *testing.T) {
	outlines := Outlines(testScreen())
	require.Len(t, outlines, 2)

	// one rectangle of five commands per run
	red := outlines[4]
	assert.Len(t, red.Cmds, 5)
	assert.Equal(t, path.CmdMoveTo, red.Cmds[0])
	assert.Equal(t, path.CmdClose, red.Cmds[4])
	assert.Equal(t, 10.0, red.Coords[0].X)
	assert.Equal(t, 13.0, red.Coords[1].X)
	assert.Equal(t, 6.0, red.Coords[2].Y)

	// row 5 is split into two background runs
	assert.Len(t, outlines[0].Cmds, (vga.Height+1)*5)
}

func TestSavePDF(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "screen.pdf")
	require.NoError(t, SavePDF(pdfPath, testScreen(), 2))

	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestSavePNG(t *testing.T) {
	pngPath := filepath.Join(t.TempDir(), "screen.png")
	require.NoError(t, SavePNG(pngPath, testScreen(), 2))

	_, err := os.Stat(pngPath)
	assert.NoError(t, err)

	err = SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), testScreen(), 1)
	assert.Error(t, err)
}
