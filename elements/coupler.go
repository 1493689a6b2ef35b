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

// BeamSplitter is a square block with a diagonal splitting surface from
// the top left to the bottom right corner.
//
// Anchors: "N0", "S0", "E0", "W0" at the edge midpoints; more can be
// requested via the count fields.  The drop point is the last east
// anchor.
type BeamSplitter struct {
	// Width and Height are the block dimensions.  Zero means 0.6.
	Width, Height float64

	// NumN, NumS, NumE and NumW give the number of anchors on each
	// edge.  Zero values default to 1.
	NumN, NumS, NumE, NumW int

	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (s BeamSplitter) Shape() (*schematic.Shape, error) {
	w, h := s.Width, s.Height
	if w == 0 {
		w = 0.6
	}
	if h == 0 {
		h = 0.6
	}

	bld, err := schematic.Block{
		Width:    w,
		Height:   h,
		NumN:     s.NumN,
		NumS:     s.NumS,
		NumE:     s.NumE,
		NumW:     s.NumW,
		BodyFill: schematic.FillBody,
		Style:    s.Style.Merged(schematic.Optical),
	}.Builder()
	if err != nil {
		return nil, err
	}

	bld.Add(schematic.Line{
		Points: []vec.Vec2{{X: 0, Y: h / 2}, {X: w, Y: -h / 2}},
	})
	return bld.Finish(), nil
}

// DotCoupler marks a coupling point as a filled dot, drawn where signal
// paths meet.  It is a degenerate zero-size block, so all four anchors
// "N0", "S0", "E0", "W0" and the drop point coincide with the origin.
type DotCoupler struct {
	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (c DotCoupler) Shape() (*schematic.Shape, error) {
	return schematic.Block{
		BodyFill: schematic.FillInk,
		Style:    c.Style.Merged(schematic.Optical),
	}.Shape()
}

// RingCoupler is a small horizontal ellipse, 0.3 wide and 0.15 tall,
// drawn where two fibers are fused into a coupler.
//
// Anchors: "N0", "S0", "E0", "W0" on the ellipse boundary.  The drop
// point is "E0" at (0.3, 0).
type RingCoupler struct {
	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (c RingCoupler) Shape() (*schematic.Shape, error) {
	const (
		w = 0.3
		h = 0.15
	)

	// The ellipse is a sampled polygon rather than an arc, so that the
	// interior can be filled.
	const numPts = 50
	pts := make([]vec.Vec2, numPts)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(numPts-1)
		pts[i] = vec.Vec2{
			X: w/2*math.Cos(t) + w/2,
			Y: h / 2 * math.Sin(t),
		}
	}
	pts[numPts-1] = pts[0]

	bld := schematic.NewBuilder(c.Style.Merged(schematic.Optical))
	bld.Add(schematic.Polygon{Points: pts, Fill: schematic.FillBody})
	bld.SetAnchor("N0", vec.Vec2{X: w / 2, Y: h / 2})
	bld.SetAnchor("S0", vec.Vec2{X: w / 2, Y: -h / 2})
	bld.SetAnchor("E0", vec.Vec2{X: w})
	bld.SetAnchor("W0", vec.Vec2{})
	bld.SetDrop(vec.Vec2{X: w})
	return bld.Finish(), nil
}
