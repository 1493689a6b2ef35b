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

// Circulator is a three-port optical circulator: a circle of radius 0.5
// centred on the origin, with an inner arc and arrow head showing the
// circulation direction.
//
// Anchors: "1" at (-0.5, 0), "2" at (0.5, 0), "3" at (0, -0.5).  Light
// entering port 1 leaves at port 2, light entering port 2 leaves at
// port 3.  The drop point is port 2.
type Circulator struct {
	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (c Circulator) Shape() (*schematic.Shape, error) {
	const radius = 0.5

	bld := schematic.NewBuilder(c.Style.Merged(schematic.Optical))
	bld.Add(schematic.Circle{
		Radius: radius,
		Fill:   schematic.FillBody,
	})

	// inner arc from -70 to 200 degrees
	start := -70 * math.Pi / 180
	bld.Add(schematic.Arc{
		Radii: vec.Vec2{X: 0.6 * radius, Y: 0.6 * radius},
		Start: start,
		Sweep: 270 * math.Pi / 180,
	})

	// arrow head at the start of the arc, tangential to it
	head := []vec.Vec2{
		{X: -0.08, Y: 0},
		{X: 0.08, Y: 0.06},
		{X: 0.08, Y: -0.06},
	}
	rot := 30 * math.Pi / 180
	sin, cos := math.Sin(rot), math.Cos(rot)
	tip := vec.Vec2{
		X: 0.6 * radius * math.Cos(start),
		Y: 0.6 * radius * math.Sin(start),
	}
	for i, p := range head {
		head[i] = vec.Vec2{
			X: p.X*cos - p.Y*sin + tip.X,
			Y: p.X*sin + p.Y*cos + tip.Y,
		}
	}
	bld.Add(schematic.Polygon{Points: head, Fill: schematic.FillInk})

	bld.SetAnchor("1", vec.Vec2{X: -radius})
	bld.SetAnchor("2", vec.Vec2{X: radius})
	bld.SetAnchor("3", vec.Vec2{Y: -radius})
	bld.SetDrop(vec.Vec2{X: radius})
	return bld.Finish(), nil
}
