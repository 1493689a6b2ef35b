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

// PowerMeter is an optical power meter: a square block with an analog
// gauge (arc and needle), labelled "OPM".
//
// Anchors: "N0", "S0", "E0", "W0" at the edge midpoints; more can be
// requested via the count fields.  The drop point is the last east
// anchor.
type PowerMeter struct {
	// NumN, NumS, NumE and NumW give the number of anchors on each
	// edge.  Zero values default to 1.
	NumN, NumS, NumE, NumW int

	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (m PowerMeter) Shape() (*schematic.Shape, error) {
	const (
		w = 1.0
		h = 1.0
	)

	bld, err := schematic.Block{
		Width:    w,
		Height:   h,
		NumN:     m.NumN,
		NumS:     m.NumS,
		NumE:     m.NumE,
		NumW:     m.NumW,
		BodyFill: schematic.FillBody,
		Style:    m.Style.Merged(schematic.Optical),
	}.Builder()
	if err != nil {
		return nil, err
	}

	// gauge scale, slightly squashed horizontally
	bld.Add(schematic.Arc{
		Center: vec.Vec2{X: w / 2, Y: -0.1},
		Radii:  vec.Vec2{X: 0.475, Y: 0.5},
		Start:  30 * math.Pi / 180,
		Sweep:  120 * math.Pi / 180,
	})
	bld.Add(schematic.Line{
		Points: []vec.Vec2{{X: w / 2}, {X: 0.7, Y: 0.325}},
		Arrow:  &schematic.Arrow{Length: 0.2, Width: 0.15},
	})
	bld.Add(schematic.Label{
		Pos:  vec.Vec2{X: w / 2, Y: -0.275},
		Text: "OPM",
	})
	return bld.Finish(), nil
}
