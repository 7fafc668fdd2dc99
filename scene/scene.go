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

// Package scene reads and writes YAML descriptions of pictures made from
// lines, rectangles, circles and dots, and draws them onto a [vga.Screen].
//
// A scene file looks like this:
//
//	name: demo
//	background: "#1e1e1e"
//	shapes:
//	  - {kind: swatches, size: [6, 6]}
//	  - {kind: line, color: 5, from: [100, 100], to: [200, 110], thickness: 1}
//	  - {kind: circle, color: 9, center: [200, 40], radius: 30, fill: 1}
//	  - {kind: dot, color: teal, at: [100, 100], thickness: 5}
//	  - {kind: rect, color: "#ff0000", from: [10, 10], size: [20, 30]}
//
// The optional "fill" entries give the outline thickness for rectangles and
// circles, where 0 means filled. A shape without a fill entry uses the
// scene's fill entry, and a scene without one uses
// [raster.CurrentFillMode].
package scene

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/vga"
)

// Errors returned when a scene is invalid.
var (
	ErrUnknownKind  = errors.New("unknown shape kind")
	ErrMissingField = errors.New("missing field")
	ErrInvalidColor = errors.New("invalid colour")
	ErrOutOfRange   = errors.New("value out of range")
)

// Limits for the numbers in a scene. Walkers do not clip, so without these
// a single shape could produce billions of points.
const (
	MaxCoord     = 10000 // largest absolute coordinate or size component
	MaxThickness = 100   // largest absolute line or dot thickness
	MaxRadius    = 10000 // largest absolute circle radius
)

// Kind identifies the type of a shape.
type Kind string

// The supported shape kinds.
const (
	KindLine     Kind = "line"
	KindRect     Kind = "rect"
	KindCircle   Kind = "circle"
	KindDot      Kind = "dot"
	KindSwatches Kind = "swatches"
)

// Point is a pair of integer coordinates, written as [x, y].
type Point [2]int

// Pt returns the Point for (x, y).
func Pt(x, y int) *Point {
	return &Point{x, y}
}

// Image converts p to an image.Point.
func (p Point) Image() image.Point {
	return image.Point{X: p[0], Y: p[1]}
}

// Scene is a picture on a 320×200 screen.
type Scene struct {
	Name       string  `yaml:"name"`
	Background Color   `yaml:"background"`
	Fill       *int    `yaml:"fill,omitempty"`
	Shapes     []Shape `yaml:"shapes"`
}

// Shape is one element of a scene. Which fields are used depends on Kind:
//
//   - line: From, To, Thickness
//   - rect: From, Size, Fill
//   - circle: Center, Radius, Fill
//   - dot: At, Thickness
//   - swatches: Size (only the x component is used, default 6)
type Shape struct {
	Kind      Kind   `yaml:"kind"`
	Color     Color  `yaml:"color,omitempty"`
	From      *Point `yaml:"from,omitempty,flow"`
	To        *Point `yaml:"to,omitempty,flow"`
	Size      *Point `yaml:"size,omitempty,flow"`
	Center    *Point `yaml:"center,omitempty,flow"`
	At        *Point `yaml:"at,omitempty,flow"`
	Radius    int    `yaml:"radius,omitempty"`
	Thickness int    `yaml:"thickness,omitempty"`
	Fill      *int   `yaml:"fill,omitempty"`
}

// Validate checks that every shape has a known kind, all the fields its
// kind requires, and numbers within the limits above.
func (sc *Scene) Validate() error {
	if sc.Fill != nil && (*sc.Fill < -MaxThickness || *sc.Fill > MaxThickness) {
		return fmt.Errorf("%w: fill %d", ErrOutOfRange, *sc.Fill)
	}
	for i, sh := range sc.Shapes {
		var missing string
		switch sh.Kind {
		case KindLine:
			if sh.From == nil {
				missing = "from"
			} else if sh.To == nil {
				missing = "to"
			}
		case KindRect:
			if sh.From == nil {
				missing = "from"
			} else if sh.Size == nil {
				missing = "size"
			}
		case KindCircle:
			if sh.Center == nil {
				missing = "center"
			}
		case KindDot:
			if sh.At == nil {
				missing = "at"
			}
		case KindSwatches:
			// all fields optional
		default:
			return fmt.Errorf("shape %d: %w %q", i, ErrUnknownKind, sh.Kind)
		}
		if missing != "" {
			return fmt.Errorf("shape %d (%s): %w %q", i, sh.Kind, ErrMissingField, missing)
		}
		if err := sh.checkRange(); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, sh.Kind, err)
		}
	}
	return nil
}

func (sh *Shape) checkRange() error {
	points := []struct {
		name string
		p    *Point
	}{
		{"from", sh.From}, {"to", sh.To}, {"size", sh.Size},
		{"center", sh.Center}, {"at", sh.At},
	}
	for _, pt := range points {
		if pt.p == nil {
			continue
		}
		for _, v := range pt.p {
			if v < -MaxCoord || v > MaxCoord {
				return fmt.Errorf("%w: %s %v", ErrOutOfRange, pt.name, *pt.p)
			}
		}
	}
	if sh.Thickness < -MaxThickness || sh.Thickness > MaxThickness {
		return fmt.Errorf("%w: thickness %d", ErrOutOfRange, sh.Thickness)
	}
	if sh.Radius < -MaxRadius || sh.Radius > MaxRadius {
		return fmt.Errorf("%w: radius %d", ErrOutOfRange, sh.Radius)
	}
	if sh.Fill != nil && (*sh.Fill < -MaxThickness || *sh.Fill > MaxThickness) {
		return fmt.Errorf("%w: fill %d", ErrOutOfRange, *sh.Fill)
	}
	return nil
}

// FillMode returns the fill mode for the shape at index i.
func (sc *Scene) FillMode(i int) raster.FillMode {
	if f := sc.Shapes[i].Fill; f != nil {
		return raster.Outline(*f)
	}
	if sc.Fill != nil {
		return raster.Outline(*sc.Fill)
	}
	return raster.CurrentFillMode()
}

// Parse reads a scene from r and validates it.
// Unknown keys in the input are an error.
func Parse(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	sc := &Scene{}
	if err := dec.Decode(sc); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", sc.Name, err)
	}
	return sc, nil
}

// Load reads and validates the scene file at path.
func Load(path string) (sc *Scene, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	sc, err = Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Encode writes sc to w in YAML form.
func Encode(w io.Writer, sc *Scene) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return fmt.Errorf("encoding scene %q: %w", sc.Name, err)
	}
	return enc.Close()
}

// Save writes sc to the file at path.
func Save(path string, sc *Scene) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, sc)
}
