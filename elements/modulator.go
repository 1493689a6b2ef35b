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

// PhaseModulator is an optical phase modulator: a 1 by 0.7 block with
// two horizontal electrode rails, labelled "PM".
//
// Anchors: "N0", "S0", "E0", "W0" at the edge midpoints; more can be
// requested via the count fields.  The drop point is the last east
// anchor.
type PhaseModulator struct {
	// NumN, NumS, NumE and NumW give the number of anchors on each
	// edge.  Zero values default to 1.
	NumN, NumS, NumE, NumW int

	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (m PhaseModulator) Shape() (*schematic.Shape, error) {
	const (
		w = 1.0
		h = 0.7
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

	bld.Add(schematic.Line{
		Points: []vec.Vec2{{X: 0, Y: h / 3.25}, {X: w, Y: h / 3.25}},
	})
	bld.Add(schematic.Line{
		Points: []vec.Vec2{{X: 0, Y: -h / 3.25}, {X: w, Y: -h / 3.25}},
	})
	bld.Add(schematic.Label{
		Pos:  vec.Vec2{X: w / 2, Y: -0.035},
		Text: "PM",
	})
	return bld.Finish(), nil
}

// MachZehnder is a Mach-Zehnder amplitude modulator: a 1.6 by 1 block
// containing the characteristic split-and-recombine waveguide.
//
// Anchors: "N0", "S0", "E0", "W0" at the edge midpoints; more can be
// requested via the count fields.  The drop point is the last east
// anchor.
type MachZehnder struct {
	// Label is the text centred in the block.  Empty means "MZM".
	Label string

	// NumN, NumS, NumE and NumW give the number of anchors on each
	// edge.  Zero values default to 1.
	NumN, NumS, NumE, NumW int

	// Style selects colours and line width, defaulting to
	// [schematic.Hybrid].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (m MachZehnder) Shape() (*schematic.Shape, error) {
	const (
		w = 1.6
		h = 1.0

		a  = 0.15
		d  = 0.7
		cx = 0.3
		cy = 0.3
	)

	bld, err := schematic.Block{
		Width:    w,
		Height:   h,
		NumN:     m.NumN,
		NumS:     m.NumS,
		NumE:     m.NumE,
		NumW:     m.NumW,
		BodyFill: schematic.FillBody,
		Style:    m.Style.Merged(schematic.Hybrid),
	}.Builder()
	if err != nil {
		return nil, err
	}

	addInterferometer(bld, vec.Vec2{}, a, cx, cy, d)

	label := m.Label
	if label == "" {
		label = "MZM"
	}
	bld.Add(schematic.Label{
		Pos:  vec.Vec2{X: w / 2, Y: -0.04},
		Text: label,
	})
	return bld.Finish(), nil
}

// addInterferometer draws the Mach-Zehnder waveguide glyph: a feed line,
// a hexagonal split-and-recombine loop, and an exit line.  org is the
// west end of the feed line; a is the lead length, cx/cy the branch
// offsets and d the straight arm length.
func addInterferometer(bld *schematic.Builder, org vec.Vec2, a, cx, cy, d float64) {
	x, y := org.X, org.Y
	bld.Add(schematic.Line{
		Points: []vec.Vec2{{X: x, Y: y}, {X: x + a, Y: y}},
	})
	bld.Add(schematic.Polygon{
		Points: []vec.Vec2{
			{X: x + a, Y: y},
			{X: x + a + cx, Y: y + cy},
			{X: x + a + cx + d, Y: y + cy},
			{X: x + a + 2*cx + d, Y: y},
			{X: x + a + cx + d, Y: y - cy},
			{X: x + a + cx, Y: y - cy},
		},
	})
	bld.Add(schematic.Line{
		Points: []vec.Vec2{
			{X: x + a + 2*cx + d, Y: y},
			{X: x + 2*a + 2*cx + d, Y: y},
		},
	})
}

// IQModulator is an in-phase/quadrature modulator: a 2.5 by 1.3 block
// with two nested Mach-Zehnder waveguides, marked "I" and "Q".
//
// Anchors: "N0", "S0", "E0", "W0" at the edge midpoints; more can be
// requested via the count fields.  The drop point is the last east
// anchor.
type IQModulator struct {
	// NumN, NumS, NumE and NumW give the number of anchors on each
	// edge.  Zero values default to 1.
	NumN, NumS, NumE, NumW int

	// Style selects colours and line width, defaulting to
	// [schematic.Hybrid].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (m IQModulator) Shape() (*schematic.Shape, error) {
	const (
		w = 2.5
		h = 1.3

		a  = 0.15
		d  = 0.7
		bx = 0.3
		by = 0.3
		cx = 0.3
		cy = 0.25
	)

	bld, err := schematic.Block{
		Width:    w,
		Height:   h,
		NumN:     m.NumN,
		NumS:     m.NumS,
		NumE:     m.NumE,
		NumW:     m.NumW,
		BodyFill: schematic.FillBody,
		Style:    m.Style.Merged(schematic.Hybrid),
	}.Builder()
	if err != nil {
		return nil, err
	}

	// splitter into the two arms
	bld.Add(schematic.Line{
		Points: []vec.Vec2{{}, {X: a}},
	})
	bld.Add(schematic.Line{
		Points: []vec.Vec2{{X: a}, {X: a + bx, Y: by}},
	})
	bld.Add(schematic.Line{
		Points: []vec.Vec2{{X: a}, {X: a + bx, Y: -by}},
	})

	addInterferometer(bld, vec.Vec2{X: a + bx, Y: by}, a, cx, cy, d)
	addInterferometer(bld, vec.Vec2{X: a + bx, Y: -by}, a, cx, cy, d)

	// combiner and exit line
	join := 3*a + bx + 2*cx + d
	out := 3*a + 2*bx + 2*cx + d
	bld.Add(schematic.Line{
		Points: []vec.Vec2{{X: join, Y: by}, {X: out}},
	})
	bld.Add(schematic.Line{
		Points: []vec.Vec2{{X: join, Y: -by}, {X: out}},
	})
	bld.Add(schematic.Line{
		Points: []vec.Vec2{{X: out}, {X: out + a}},
	})

	bld.Add(schematic.Label{
		Pos:  vec.Vec2{X: w / 2, Y: h/4 - 0.06},
		Text: "I",
	})
	bld.Add(schematic.Label{
		Pos:  vec.Vec2{X: w / 2, Y: -h/4 - 0.02},
		Text: "Q",
	})
	return bld.Finish(), nil
}
