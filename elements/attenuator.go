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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/schematic"
)

// VariableAttenuator is a variable optical attenuator: a 0.7 by 0.7 box
// with a circle and a diagonal adjustment arrow.
//
// Anchors: "W" at the origin and "E" at (0.7, 0), which is also the drop
// point.
type VariableAttenuator struct {
	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (a VariableAttenuator) Shape() (*schematic.Shape, error) {
	const (
		w = 0.7
		h = 0.7
	)

	bld := schematic.NewBuilder(a.Style.Merged(schematic.Optical))
	bld.Add(schematic.Polygon{
		Points: []vec.Vec2{
			{X: 0, Y: h / 2},
			{X: w, Y: h / 2},
			{X: w, Y: -h / 2},
			{X: 0, Y: -h / 2},
		},
		Fill: schematic.FillBody,
	})
	bld.Add(schematic.Circle{
		Center: vec.Vec2{X: w / 2},
		Radius: w / 3,
	})
	bld.Add(schematic.Line{
		Points: []vec.Vec2{
			{X: 0.09, Y: -h/2 + 0.09},
			{X: w - 0.05, Y: h/2 - 0.05},
		},
		Arrow: &schematic.Arrow{Length: 0.13, Width: 0.1},
	})

	bld.SetAnchor("W", vec.Vec2{})
	bld.SetAnchor("E", vec.Vec2{X: w})
	bld.SetDrop(vec.Vec2{X: w})
	return bld.Finish(), nil
}
