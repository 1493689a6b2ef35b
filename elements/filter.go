// seehuhn.de/go/schematic - a library for drawing communications schematics
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

package elements

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/schematic"
)

// Filter is an optical filter: a square block with a sine-wave glyph
// across the middle.
//
// Anchors: "N0", "S0", "E0", "W0" at the edge midpoints; more can be
// requested via the count fields.  The drop point is the last east
// anchor.
type Filter struct {
	// NumN, NumS, NumE and NumW give the number of anchors on each
	// edge.  Zero values default to 1.
	NumN, NumS, NumE, NumW int

	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (f Filter) Shape() (*schematic.Shape, error) {
	const (
		w = 1.0
		h = 1.0
	)

	bld, err := schematic.Block{
		Width:    w,
		Height:   h,
		NumN:     f.NumN,
		NumS:     f.NumS,
		NumE:     f.NumE,
		NumW:     f.NumW,
		BodyFill: schematic.FillBody,
		Style:    f.Style.Merged(schematic.Optical),
	}.Builder()
	if err != nil {
		return nil, err
	}

	const numPts = 30
	pts := make([]vec.Vec2, numPts)
	for i := range pts {
		t := float64(i) / float64(numPts-1)
		pts[i] = vec.Vec2{
			X: 0.2 + 0.6*t,
			Y: 0.12 * math.Sin(2*math.Pi*t),
		}
	}
	bld.Add(schematic.Line{Points: pts})

	return bld.Finish(), nil
}
