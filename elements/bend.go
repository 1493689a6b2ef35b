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

// Bend90 is a quarter-circle bend in a signal path.  The element enters
// horizontally and leaves vertically, turning left.
//
// Anchors: "in" at (Radius, 0), "out" at (0, Radius), which is also the
// drop point.
type Bend90 struct {
	// Radius is the bend radius in schematic units.  Zero means 1;
	// negative values are rejected.
	Radius float64

	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (b Bend90) Shape() (*schematic.Shape, error) {
	r, err := bendRadius("Bend90", b.Radius)
	if err != nil {
		return nil, err
	}

	bld := schematic.NewBuilder(b.Style.Merged(schematic.Optical))
	bld.Add(schematic.Arc{
		Radii: vec.Vec2{X: r, Y: r},
		Sweep: math.Pi / 2,
	})
	bld.SetAnchor("in", vec.Vec2{X: r})
	bld.SetAnchor("out", vec.Vec2{Y: r})
	bld.SetDrop(vec.Vec2{Y: r})
	return bld.Finish(), nil
}

// Bend180 is a half-circle bend which reverses the direction of a signal
// path.
//
// Anchors: "in" at (Radius, 0), "out" at (-Radius, 0), which is also the
// drop point.
type Bend180 struct {
	// Radius is the bend radius in schematic units.  Zero means 1;
	// negative values are rejected.
	Radius float64

	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (b Bend180) Shape() (*schematic.Shape, error) {
	r, err := bendRadius("Bend180", b.Radius)
	if err != nil {
		return nil, err
	}

	bld := schematic.NewBuilder(b.Style.Merged(schematic.Optical))
	bld.Add(schematic.Arc{
		Radii: vec.Vec2{X: r, Y: r},
		Sweep: math.Pi,
	})
	bld.SetAnchor("in", vec.Vec2{X: r})
	bld.SetAnchor("out", vec.Vec2{X: -r})
	bld.SetDrop(vec.Vec2{X: -r})
	return bld.Finish(), nil
}

func bendRadius(element string, r float64) (float64, error) {
	if r < 0 {
		return 0, &schematic.InvalidParameterError{
			Element: element, Param: "Radius", Value: r,
		}
	}
	if r == 0 {
		return 1, nil
	}
	return r, nil
}

// Terminator marks the dead end of a signal path with a short
// perpendicular bar.
//
// Anchors "in" and "out" both coincide with the origin.
type Terminator struct {
	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (t Terminator) Shape() (*schematic.Shape, error) {
	bld := schematic.NewBuilder(t.Style.Merged(schematic.Optical))
	bld.Add(schematic.Line{
		Points:    []vec.Vec2{{}, {Y: 0.2}},
		LineWidth: 2,
	})
	bld.Add(schematic.Line{
		Points:    []vec.Vec2{{}, {Y: -0.2}},
		LineWidth: 2,
	})
	bld.SetAnchor("in", vec.Vec2{})
	bld.SetAnchor("out", vec.Vec2{})
	bld.SetDrop(vec.Vec2{})
	return bld.Finish(), nil
}
