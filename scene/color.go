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
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/raster/vga"
)

// Color is a colour as written in a scene file: either a palette index,
// a "#rrggbb" string, or an SVG colour name such as "teal". RGB colours are
// mapped to the closest palette entry when the scene is rendered.
//
// The zero value is palette index 0.
type Color struct {
	index uint8
	rgb   color.RGBA
	isRGB bool
	text  string // original spelling of an RGB colour
}

// Index returns the colour for the given palette index.
func Index(i uint8) Color {
	return Color{index: i}
}

// ParseColor parses the string form of a colour: a decimal palette index,
// "#rrggbb", or a colour name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		if i < 0 || i > 255 {
			return Color{}, fmt.Errorf("%w: palette index %d out of range", ErrInvalidColor, i)
		}
		return Index(uint8(i)), nil
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || len(hex) != 6 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		rgb := color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
		return Color{rgb: rgb, isRGB: true, text: strings.ToLower(s)}, nil
	}

	name := strings.ToLower(s)
	rgb, ok := colornames.Map[name]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown colour name %q", ErrInvalidColor, s)
	}
	return Color{rgb: rgb, isRGB: true, text: name}, nil
}

// Resolve returns the palette index for c.
func (c Color) Resolve(p *vga.Palette) uint8 {
	if c.isRGB {
		return p.Index(c.rgb)
	}
	return c.index
}

// IsZero reports whether c is palette index 0 given as a number.
// This lets "omitempty" work in YAML output.
func (c Color) IsZero() bool {
	return !c.isRGB && c.index == 0
}

func (c Color) String() string {
	if c.isRGB {
		return c.text
	}
	return strconv.Itoa(int(c.index))
}

// MarshalYAML implements the yaml.Marshaler interface.
func (c Color) MarshalYAML() (any, error) {
	if c.isRGB {
		return c.text, nil
	}
	return int(c.index), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected a scalar", node.Line, ErrInvalidColor)
	}
	res, err := ParseColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = res
	return nil
}
