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
	"fmt"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/schematic"
)

// Mux is a wavelength multiplexer: a trapezoid which narrows from a tall
// west edge (2.5 units) to a short east edge (1 unit), labelled "MUX".
// The same element drawn mirrored serves as a demultiplexer.
//
// Anchors: "W0", "W1", … top to bottom on the west edge, "E0", "E1", …
// top to bottom on the east edge.  The drop point is the last east
// anchor.
type Mux struct {
	// NumE and NumW give the number of anchors on the east and west
	// edges.  Zero values default to 1; negative values are rejected.
	NumE, NumW int

	// Style selects colours and line width, defaulting to
	// [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (m Mux) Shape() (*schematic.Shape, error) {
	const (
		heightW = 2.5
		heightE = 1.0
		width   = 1.0
	)

	numE, err := muxCount("NumE", m.NumE)
	if err != nil {
		return nil, err
	}
	numW, err := muxCount("NumW", m.NumW)
	if err != nil {
		return nil, err
	}

	bld := schematic.NewBuilder(m.Style.Merged(schematic.Optical))
	bld.Add(schematic.Polygon{
		Points: []vec.Vec2{
			{X: 0, Y: heightW / 2},
			{X: width, Y: heightE / 2},
			{X: width, Y: -heightE / 2},
			{X: 0, Y: -heightW / 2},
		},
		Fill: schematic.FillBody,
	})
	bld.Add(schematic.Label{
		Pos:  vec.Vec2{X: width / 2},
		Text: "MUX",
	})

	for i := range numE {
		bld.SetAnchor(fmt.Sprintf("E%d", i), vec.Vec2{
			X: width,
			Y: heightE/2 - float64(i+1)*heightE/float64(numE+1),
		})
	}
	for i := range numW {
		bld.SetAnchor(fmt.Sprintf("W%d", i), vec.Vec2{
			Y: heightW/2 - float64(i+1)*heightW/float64(numW+1),
		})
	}

	bld.SetDrop(vec.Vec2{
		X: width,
		Y: heightE/2 - float64(numE)*heightE/float64(numE+1),
	})
	return bld.Finish(), nil
}

func muxCount(name string, n int) (int, error) {
	if n < 0 {
		return 0, &schematic.InvalidParameterError{
			Element: "Mux", Param: name, Value: n,
		}
	}
	if n == 0 {
		return 1, nil
	}
	return n, nil
}
