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
	"bytes"
	"errors"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/vga"
)

const demoScene = `
name: demo
background: "#1e1e1e"
shapes:
  - {kind: swatches, size: [6, 6]}
  - {kind: line, color: 5, from: [100, 100], to: [200, 110], thickness: 1}
  - {kind: circle, color: 9, center: [200, 40], radius: 30, fill: 1}
  - {kind: dot, color: teal, at: [250, 150], thickness: 5}
  - {kind: rect, color: "#ff0000", from: [10, 150], size: [20, 30]}
`

func TestParseAndRender(t *testing.T) {
	sc, err := Parse(strings.NewReader(demoScene))
	require.NoError(t, err)
	require.Len(t, sc.Shapes, 5)
	assert.Equal(t, "demo", sc.Name)
	assert.Equal(t, KindCircle, sc.Shapes[2].Kind)
	assert.Equal(t, raster.Outline(1), sc.FillMode(2))

	s := vga.NewScreen(nil, nil)
	n, err := Render(sc, s)
	require.NoError(t, err)
	assert.Positive(t, n)

	pal := s.Palette()
	assert.Equal(t, pal.RGB(0x1e, 0x1e, 0x1e), s.Pixel(319, 199), "background")
	assert.Equal(t, uint8(5), s.Pixel(150, 105), "line")
	assert.Equal(t, uint8(9), s.Pixel(230, 40), "circle")
	assert.Equal(t, pal.Index(color.RGBA{R: 0, G: 0x80, B: 0x80, A: 0xFF}), s.Pixel(250, 150), "dot")
	assert.Equal(t, pal.RGB(0xff, 0, 0), s.Pixel(20, 160), "rect")
	assert.Equal(t, uint8(17), s.Pixel(6, 6), "swatches")
}

func TestRoundTrip(t *testing.T) {
	sc, err := Parse(strings.NewReader(demoScene))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, Encode(buf, sc))

	sc2, err := Parse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err, buf.String())
	assert.Equal(t, sc, sc2)
}

func TestSaveLoad(t *testing.T) {
	fill := 2
	sc := &Scene{
		Name:       "saved",
		Background: Index(1),
		Fill:       &fill,
		Shapes: []Shape{
			{Kind: KindRect, Color: Index(4), From: Pt(1, 2), Size: Pt(3, 4)},
		},
	}

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, Save(path, sc))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sc, got)
	assert.Equal(t, raster.Outline(2), got.FillMode(0))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"unknown_kind", "shapes: [{kind: spline}]", ErrUnknownKind},
		{"line_without_end", "shapes: [{kind: line, from: [0, 0]}]", ErrMissingField},
		{"rect_without_size", "shapes: [{kind: rect, from: [0, 0]}]", ErrMissingField},
		{"circle_without_center", "shapes: [{kind: circle, radius: 3}]", ErrMissingField},
		{"dot_without_position", "shapes: [{kind: dot}]", ErrMissingField},
		{"bad_colour_name", "background: notacolour", ErrInvalidColor},
		{"bad_hex", `background: "#12345"`, ErrInvalidColor},
		{"index_out_of_range", "background: 256", ErrInvalidColor},
		{"huge_thickness", "shapes: [{kind: line, from: [0, 0], to: [5, 5], thickness: 100000}]", ErrOutOfRange},
		{"huge_radius", "shapes: [{kind: circle, center: [0, 0], radius: -20000}]", ErrOutOfRange},
		{"huge_coordinate", "shapes: [{kind: line, from: [-2000000000, 0], to: [5, 5]}]", ErrOutOfRange},
		{"huge_scene_fill", "fill: 500\nshapes: []", ErrOutOfRange},
		{"huge_fill", "shapes: [{kind: rect, from: [0, 0], size: [5, 5], fill: 1000}]", ErrOutOfRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(c.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.want), "got %v", err)
		})
	}
}

func TestRenderRejectsHugeShapes(t *testing.T) {
	sc := &Scene{
		Shapes: []Shape{
			{Kind: KindDot, At: Pt(10, 10), Thickness: MaxThickness + 1},
		},
	}
	n, err := Render(sc, vga.NewScreen(nil, nil))
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Zero(t, n)

	sc.Shapes[0].Thickness = MaxThickness
	_, err = Render(sc, vga.NewScreen(nil, nil))
	assert.NoError(t, err)
}

func TestUnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("shapes: [{kind: dot, at: [1, 1], colour: 3}]"))
	assert.Error(t, err)
}

func TestFillModeDefault(t *testing.T) {
	defer raster.SetFillMode(raster.CurrentFillMode())
	raster.SetFillMode(raster.Outline(3))

	sc, err := Parse(strings.NewReader("shapes: [{kind: circle, center: [5, 5], radius: 2}]"))
	require.NoError(t, err)
	assert.Equal(t, raster.Outline(3), sc.FillMode(0))

	zero := 0
	sc.Fill = &zero
	assert.True(t, sc.FillMode(0).IsFill())
}

func TestParseColor(t *testing.T) {
	pal := vga.DefaultPalette()

	c, err := ParseColor("12")
	require.NoError(t, err)
	assert.Equal(t, uint8(12), c.Resolve(pal))
	assert.Equal(t, "12", c.String())

	c, err = ParseColor("#FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, uint8(15), c.Resolve(pal))
	assert.Equal(t, "#ffffff", c.String())

	c, err = ParseColor("Black")
	require.NoError(t, err)
	assert.Equal(t, uint8(0), c.Resolve(pal))
	assert.Equal(t, "black", c.String())

	_, err = ParseColor("-1")
	assert.ErrorIs(t, err, ErrInvalidColor)
}
