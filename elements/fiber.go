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

// FiberSpool is a length of fiber on a spool: a 1.1 by 0.9 block with
// three overlapping fiber loops and a feed line.
//
// Anchors: "N0", "S0", "E0", "W0" at the edge midpoints.  The drop point
// is "E0".
type FiberSpool struct {
	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (f FiberSpool) Shape() (*schematic.Shape, error) {
	const (
		w      = 1.1
		h      = 0.9
		radius = 0.3
		length = 1.0
	)

	bld, err := schematic.Block{
		Width:    w,
		Height:   h,
		BodyFill: schematic.FillBody,
		Style:    f.Style.Merged(schematic.Optical),
	}.Builder()
	if err != nil {
		return nil, err
	}

	bld.Add(schematic.Line{
		Points: []vec.Vec2{{X: 0.1, Y: -0.3}, {X: length, Y: -0.3}},
	})
	for _, dx := range []float64{-0.125, 0, 0.125} {
		bld.Add(schematic.Circle{
			Center: vec.Vec2{X: 0.05 + length/2 + dx, Y: radius - 0.3},
			Radius: radius,
		})
	}
	return bld.Finish(), nil
}

// PolarizationController is the classic three-paddle polarization
// controller: a straight fiber with three tangent loops above it.
//
// Anchors: "in" at the origin, "out" at the east end of the fiber, which
// is also the drop point.
type PolarizationController struct {
	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (p PolarizationController) Shape() (*schematic.Shape, error) {
	const (
		radius = 0.19
		length = 6 * radius
	)

	bld := schematic.NewBuilder(p.Style.Merged(schematic.Optical))
	bld.Add(schematic.Line{
		Points: []vec.Vec2{{}, {X: length}},
	})
	for _, dx := range []float64{-2 * radius, 0, 2 * radius} {
		bld.Add(schematic.Circle{
			Center: vec.Vec2{X: length/2 + dx, Y: radius},
			Radius: radius,
		})
	}
	bld.SetAnchor("in", vec.Vec2{})
	bld.SetAnchor("out", vec.Vec2{X: length})
	bld.SetDrop(vec.Vec2{X: length})
	return bld.Finish(), nil
}
