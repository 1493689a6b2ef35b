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

import "seehuhn.de/go/geom/vec"

// A Segment is a single drawing primitive in an element's local coordinate
// frame.  The concrete types are [Line], [Arc], [Circle], [Polygon] and
// [Label].
type Segment interface {
	isSegment()
}

// Fill selects how the interior of a closed primitive is painted.
type Fill int

const (
	// FillNone leaves the interior unpainted; only the outline is
	// stroked.
	FillNone Fill = iota

	// FillBody paints the interior with the style's body colour
	// (normally white), so that the primitive covers wires drawn
	// underneath it.
	FillBody

	// FillInk paints the interior with the style's stroke colour.
	FillInk
)

// Arrow describes an arrow head at the end of a [Line].
type Arrow struct {
	Length float64 // length of the head along the line direction
	Width  float64 // total width of the head
}

// Line is an open polyline through two or more points.
type Line struct {
	Points []vec.Vec2

	// Arrow, if non-nil, adds an arrow head at the last point,
	// pointing away from the second-to-last point.
	Arrow *Arrow

	// LineWidth overrides the style's line width if positive.
	LineWidth float64
}

// Arc is a counter-clockwise elliptical arc.  Angles are in radians,
// measured from the positive x-axis.  For a circular arc both radii are
// equal.
type Arc struct {
	Center vec.Vec2
	Radii  vec.Vec2
	Start  float64
	Sweep  float64
}

// Circle is a full circle.
type Circle struct {
	Center vec.Vec2
	Radius float64
	Fill   Fill
}

// Polygon is a closed polygon.  The final closing edge is implicit; the
// first point does not need to be repeated.
type Polygon struct {
	Points []vec.Vec2
	Fill   Fill
}

// Label is a single line of text centred at Pos.
type Label struct {
	Pos  vec.Vec2
	Text string

	// Size is the text size in schematic units.  If zero, the
	// renderer's default label size is used.
	Size float64
}

func (Line) isSegment()    {}
func (Arc) isSegment()     {}
func (Circle) isSegment()  {}
func (Polygon) isSegment() {}
func (Label) isSegment()   {}
