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

package schematic

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Block is a rectangular outline with evenly spaced boundary anchors.  It
// is the shared base of most catalog elements: leaves obtain a pre-loaded
// builder via [Block.Builder] and add their decorations on top.
//
// The local frame has the origin at the middle of the west edge, so the
// rectangle spans x in [0, Width] and y in [-Height/2, Height/2].
//
// On an edge of length L with n anchors, the i-th anchor (zero-based) sits
// at distance (i+1)*L/(n+1) from the edge's start, dividing the edge into
// n+1 equal parts with no anchor on a corner.  North and south anchors are
// numbered left to right, east and west anchors top to bottom.
//
// The drop point is the last east anchor, "E" followed by NumE-1.
type Block struct {
	// Width and Height are the rectangle dimensions in schematic
	// units.  Both may be zero (a degenerate, point-sized block), but
	// not negative.
	Width, Height float64

	// NumN, NumS, NumE and NumW give the number of anchors on each
	// edge.  Zero values default to 1; negative values are rejected.
	NumN, NumS, NumE, NumW int

	// BodyFill selects how the rectangle's interior is painted.
	// The zero value, FillNone, leaves it transparent; most elements
	// use FillBody so that the block covers wires underneath.
	BodyFill Fill

	// Style selects colours and line width.  Unset fields default to
	// the [Optical] palette.
	Style Style
}

// Builder validates the parameters and returns a [Builder] holding the
// rectangle outline, the edge anchors and the drop point.
func (b Block) Builder() (*Builder, error) {
	if b.Width < 0 {
		return nil, &InvalidParameterError{"Block", "Width", b.Width}
	}
	if b.Height < 0 {
		return nil, &InvalidParameterError{"Block", "Height", b.Height}
	}
	numN, err := anchorCount("NumN", b.NumN)
	if err != nil {
		return nil, err
	}
	numS, err := anchorCount("NumS", b.NumS)
	if err != nil {
		return nil, err
	}
	numE, err := anchorCount("NumE", b.NumE)
	if err != nil {
		return nil, err
	}
	numW, err := anchorCount("NumW", b.NumW)
	if err != nil {
		return nil, err
	}

	w, h := b.Width, b.Height
	bld := NewBuilder(b.Style.Merged(Optical))
	bld.Add(Polygon{
		Points: []vec.Vec2{
			{X: 0, Y: -h / 2},
			{X: w, Y: -h / 2},
			{X: w, Y: h / 2},
			{X: 0, Y: h / 2},
			{X: 0, Y: -h / 2},
		},
		Fill: b.BodyFill,
	})

	for i := range numN {
		bld.SetAnchor(fmt.Sprintf("N%d", i),
			vec.Vec2{X: float64(i+1) * w / float64(numN+1), Y: h / 2})
	}
	for i := range numS {
		bld.SetAnchor(fmt.Sprintf("S%d", i),
			vec.Vec2{X: float64(i+1) * w / float64(numS+1), Y: -h / 2})
	}
	for i := range numE {
		bld.SetAnchor(fmt.Sprintf("E%d", i),
			vec.Vec2{X: w, Y: h/2 - float64(i+1)*h/float64(numE+1)})
	}
	for i := range numW {
		bld.SetAnchor(fmt.Sprintf("W%d", i),
			vec.Vec2{X: 0, Y: h/2 - float64(i+1)*h/float64(numW+1)})
	}

	// the last (bottom-most) east anchor
	bld.SetDrop(vec.Vec2{X: w, Y: h/2 - float64(numE)*h/float64(numE+1)})

	return bld, nil
}

// Shape implements the [Element] interface.
func (b Block) Shape() (*Shape, error) {
	bld, err := b.Builder()
	if err != nil {
		return nil, err
	}
	return bld.Finish(), nil
}

func anchorCount(name string, n int) (int, error) {
	if n < 0 {
		return 0, &InvalidParameterError{"Block", name, n}
	}
	if n == 0 {
		return 1, nil
	}
	return n, nil
}
