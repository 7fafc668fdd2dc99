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

package raster

import (
	"strconv"
	"sync"
)

// FillMode selects whether closed shapes are filled or outlined.
//
// The zero value is [Fill]. Positive values are outlines of the given
// thickness, see [Outline]. The walkers in this package never consult the
// fill mode; it is meant for code that decides which walker to use.
type FillMode int

// Fill paints the interior of closed shapes.
const Fill FillMode = 0

// Outline returns the fill mode for outlines of the given thickness.
// Thickness 0 gives [Fill], negative thickness is treated as its absolute
// value.
func Outline(thickness int) FillMode {
	return FillMode(abs(thickness))
}

// IsFill reports whether m fills the interior.
func (m FillMode) IsFill() bool {
	return m == Fill
}

// Thickness returns the outline thickness, or 0 for [Fill].
func (m FillMode) Thickness() int {
	return abs(int(m))
}

func (m FillMode) String() string {
	if m.IsFill() {
		return "fill"
	}
	return "outline(" + strconv.Itoa(m.Thickness()) + ")"
}

// defaultFillMode holds the process-wide fill mode. It starts as Fill and
// lives for the lifetime of the process.
var defaultFillMode struct {
	mu   sync.Mutex
	mode FillMode
}

// SetFillMode sets the process-wide fill mode.
// Code which can pass a FillMode explicitly should do so instead.
func SetFillMode(m FillMode) {
	defaultFillMode.mu.Lock()
	defaultFillMode.mode = m
	defaultFillMode.mu.Unlock()
}

// CurrentFillMode returns the process-wide fill mode.
func CurrentFillMode() FillMode {
	defaultFillMode.mu.Lock()
	defer defaultFillMode.mu.Unlock()
	return defaultFillMode.mode
}
