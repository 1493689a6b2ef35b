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
	"maps"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// An Element can describe its geometry as a [Shape].
//
// The error, if any, reports invalid construction parameters as an
// [*InvalidParameterError].
type Element interface {
	Shape() (*Shape, error)
}

// Shape is the finished geometry of a schematic element: an ordered list of
// segments, a set of named anchor points, and a drop point.  All
// coordinates are in the element's local frame.
//
// Shapes are immutable.  Use a [Builder] to construct one.
type Shape struct {
	segments []Segment
	anchors  map[string]vec.Vec2
	drop     vec.Vec2
	style    Style
}

// Segments returns the drawing primitives in drawing order.
// The returned slice is a copy and can be modified by the caller.
func (s *Shape) Segments() []Segment {
	return slices.Clone(s.segments)
}

// Anchor returns the named anchor point.
//
// Anchors on bordered shapes are named by compass edge and zero-based
// index: "N0", "N1", … left to right along the top edge, "S…" along the
// bottom edge, and "E…"/"W…" top to bottom along the sides.  Two-port
// elements use "in"/"out" or "W"/"E" instead.
func (s *Shape) Anchor(name string) (vec.Vec2, bool) {
	p, ok := s.anchors[name]
	return p, ok
}

// AnchorNames returns the names of all anchors, sorted alphabetically.
func (s *Shape) AnchorNames() []string {
	return slices.Sorted(maps.Keys(s.anchors))
}

// Drop returns the point at which the next element should be placed when
// elements are chained left to right.
func (s *Shape) Drop() vec.Vec2 {
	return s.drop
}

// Style returns the colours and line width the shape is drawn with.
func (s *Shape) Style() Style {
	return s.style
}

// BBox returns the bounding box of the shape's geometry.  Arcs are bounded
// by the full ellipse they lie on; label extents are not included.
func (s *Shape) BBox() rect.Rect {
	var b rect.Rect
	first := true
	include := func(x, y float64) {
		if first {
			b = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
			first = false
			return
		}
		b.LLx = min(b.LLx, x)
		b.LLy = min(b.LLy, y)
		b.URx = max(b.URx, x)
		b.URy = max(b.URy, y)
	}
	for _, seg := range s.segments {
		switch seg := seg.(type) {
		case Line:
			for _, p := range seg.Points {
				include(p.X, p.Y)
			}
		case Arc:
			include(seg.Center.X-seg.Radii.X, seg.Center.Y-seg.Radii.Y)
			include(seg.Center.X+seg.Radii.X, seg.Center.Y+seg.Radii.Y)
		case Circle:
			include(seg.Center.X-seg.Radius, seg.Center.Y-seg.Radius)
			include(seg.Center.X+seg.Radius, seg.Center.Y+seg.Radius)
		case Polygon:
			for _, p := range seg.Points {
				include(p.X, p.Y)
			}
		case Label:
			include(seg.Pos.X, seg.Pos.Y)
		}
	}
	return b
}

// A Builder accumulates segments and anchors and is turned into an
// immutable [Shape] by [Builder.Finish].
type Builder struct {
	segments []Segment
	anchors  map[string]vec.Vec2
	drop     vec.Vec2
	hasDrop  bool
	style    Style
}

// NewBuilder returns a builder for a shape drawn with the given style.
func NewBuilder(style Style) *Builder {
	return &Builder{
		anchors: make(map[string]vec.Vec2),
		style:   style,
	}
}

// Add appends a drawing primitive.
func (b *Builder) Add(seg Segment) {
	b.segments = append(b.segments, seg)
}

// SetAnchor sets the named anchor point.
func (b *Builder) SetAnchor(name string, p vec.Vec2) {
	b.anchors[name] = p
}

// SetDrop sets the drop point.  If the drop point is never set, it
// defaults to the origin.
func (b *Builder) SetDrop(p vec.Vec2) {
	b.drop = p
	b.hasDrop = true
}

// Finish returns the accumulated shape.  The builder can be used further
// without affecting the returned value.
func (b *Builder) Finish() *Shape {
	return &Shape{
		segments: slices.Clone(b.segments),
		anchors:  maps.Clone(b.anchors),
		drop:     b.drop,
		style:    b.style,
	}
}
