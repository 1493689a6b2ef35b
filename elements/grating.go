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

// BraggGrating is a fiber Bragg grating: a 1 by 0.5 box with four filled
// grating teeth above and below, labelled "FBG".
//
// Anchors: "in" at the origin, "out" at (1, 0), which is also the drop
// point.
type BraggGrating struct {
	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (g BraggGrating) Shape() (*schematic.Shape, error) {
	const (
		w = 1.0
		h = 0.5
	)

	bld := schematic.NewBuilder(g.Style.Merged(schematic.Optical))
	bld.Add(schematic.Polygon{
		Points: []vec.Vec2{
			{X: 0, Y: -h / 2},
			{X: w, Y: -h / 2},
			{X: w, Y: h / 2},
			{X: 0, Y: h / 2},
		},
	})

	for i := range 4 {
		x := 0.15 + float64(i)*0.2
		bld.Add(schematic.Polygon{
			Points: []vec.Vec2{
				{X: x, Y: h / 2},
				{X: x, Y: h/2 + 0.075},
				{X: x + 0.1, Y: h/2 + 0.075},
				{X: x + 0.1, Y: h / 2},
			},
			Fill: schematic.FillInk,
		})
		bld.Add(schematic.Polygon{
			Points: []vec.Vec2{
				{X: x, Y: -h / 2},
				{X: x, Y: -h/2 - 0.075},
				{X: x + 0.1, Y: -h/2 - 0.075},
				{X: x + 0.1, Y: -h / 2},
			},
			Fill: schematic.FillInk,
		})
	}

	bld.Add(schematic.Label{
		Pos:  vec.Vec2{X: w / 2, Y: -0.03},
		Text: "FBG",
	})

	bld.SetAnchor("in", vec.Vec2{})
	bld.SetAnchor("out", vec.Vec2{X: w})
	bld.SetDrop(vec.Vec2{X: w})
	return bld.Finish(), nil
}
