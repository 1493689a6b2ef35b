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

// Photodiode is a photodetector: a square block with a vertical diode
// symbol inside.
//
// Anchors: "N0", "S0", "E0", "W0" at the edge midpoints; more can be
// requested via the count fields.  The drop point is the last east
// anchor.
type Photodiode struct {
	// NumN, NumS, NumE and NumW give the number of anchors on each
	// edge.  Zero values default to 1.
	NumN, NumS, NumE, NumW int

	// Style selects colours and line width.  Photodetectors sit at
	// the optical-to-electrical boundary; unset fields default to
	// [schematic.Optical], use [schematic.RF] or [schematic.Hybrid]
	// according to context.
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (d Photodiode) Shape() (*schematic.Shape, error) {
	const (
		w = 1.0
		h = 1.0
	)

	bld, err := schematic.Block{
		Width:    w,
		Height:   h,
		NumN:     d.NumN,
		NumS:     d.NumS,
		NumE:     d.NumE,
		NumW:     d.NumW,
		BodyFill: schematic.FillBody,
		Style:    d.Style.Merged(schematic.Optical),
	}.Builder()
	if err != nil {
		return nil, err
	}

	// bottom lead, triangle, bar, top lead
	bld.Add(schematic.Line{
		Points: []vec.Vec2{
			{X: w / 2, Y: -h / 2},
			{X: w / 2, Y: -h/2 + 0.3},
		},
	})
	bld.Add(schematic.Polygon{
		Points: []vec.Vec2{
			{X: w/4 - 0.05, Y: -h/2 + 0.3},
			{X: w / 2, Y: h/2 - 0.35},
			{X: 3*w/4 + 0.05, Y: -h/2 + 0.3},
		},
		Fill: schematic.FillInk,
	})
	bld.Add(schematic.Line{
		Points: []vec.Vec2{
			{X: w/4 - 0.05, Y: h/2 - 0.35},
			{X: 3*w/4 + 0.05, Y: h/2 - 0.35},
		},
	})
	bld.Add(schematic.Line{
		Points: []vec.Vec2{
			{X: w / 2, Y: h/2 - 0.35},
			{X: w / 2, Y: h / 2},
		},
	})
	return bld.Finish(), nil
}

// LaserDiode is a laser source: a square block with a diode symbol and
// two emission arrows.
//
// Anchors: "N0", "S0", "E0", "W0" at the edge midpoints; more can be
// requested via the count fields.  The drop point is the last east
// anchor.
type LaserDiode struct {
	// NumN, NumS, NumE and NumW give the number of anchors on each
	// edge.  Zero values default to 1.
	NumN, NumS, NumE, NumW int

	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (d LaserDiode) Shape() (*schematic.Shape, error) {
	const (
		w = 1.0
		h = 1.0
	)

	bld, err := schematic.Block{
		Width:    w,
		Height:   h,
		NumN:     d.NumN,
		NumS:     d.NumS,
		NumE:     d.NumE,
		NumW:     d.NumW,
		BodyFill: schematic.FillBody,
		Style:    d.Style.Merged(schematic.Optical),
	}.Builder()
	if err != nil {
		return nil, err
	}

	bld.Add(schematic.Line{
		Points: []vec.Vec2{
			{X: w / 2, Y: -h/2 + 0.1},
			{X: w / 2, Y: -h/2 + 0.25},
		},
	})
	bld.Add(schematic.Polygon{
		Points: []vec.Vec2{
			{X: w / 4, Y: -h/2 + 0.25},
			{X: w / 2, Y: h/2 - 0.45},
			{X: 3 * w / 4, Y: -h/2 + 0.25},
		},
		Fill: schematic.FillInk,
	})
	bld.Add(schematic.Line{
		Points: []vec.Vec2{
			{X: w / 4, Y: h/2 - 0.45},
			{X: 3 * w / 4, Y: h/2 - 0.45},
		},
	})
	bld.Add(schematic.Line{
		Points: []vec.Vec2{
			{X: w / 2, Y: h/2 - 0.45},
			{X: w / 2, Y: h/2 - 0.25},
		},
	})

	// emission arrows
	for _, org := range []vec.Vec2{{X: 0.62, Y: 0.22}, {X: 0.7, Y: 0.15}} {
		bld.Add(schematic.Line{
			Points: []vec.Vec2{
				org,
				{X: org.X + h/6, Y: org.Y + h/6},
			},
			Arrow:     &schematic.Arrow{Length: 0.15, Width: 0.09},
			LineWidth: 1.15,
		})
	}
	return bld.Finish(), nil
}
