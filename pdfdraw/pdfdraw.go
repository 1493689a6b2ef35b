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

// Package pdfdraw renders schematic shapes into PDF content streams.
//
// The package maps element geometry from schematic units to PDF points
// and emits the corresponding path and text operators via a
// [builder.Builder].  Renderers for other output formats can be written
// against [seehuhn.de/go/schematic.Shape] in the same way.
package pdfdraw

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/graphics/content/builder"
	"seehuhn.de/go/schematic"
)

// UnitSize is the default size of one schematic unit, in PDF points.
const UnitSize = 36.0

// defaultLabelSize is the text size used for labels which do not specify
// one, in PDF points.
const defaultLabelSize = 14.0

// A Canvas renders shapes onto a PDF content stream.  Positions given to
// [Canvas.Draw] and [Canvas.Place] are in schematic units, relative to
// the PDF coordinate origin.
type Canvas struct {
	// B receives the generated PDF operators.
	B *builder.Builder

	// Font is used for text labels.  Drawing a shape which contains a
	// label fails if Font is nil.
	Font font.Instance

	// Scale is the size of one schematic unit in PDF points.
	// Zero means [UnitSize].
	Scale float64
}

func (c *Canvas) scale() float64 {
	if c.Scale == 0 {
		return UnitSize
	}
	return c.Scale
}

// Place renders the element with its local origin at the given position
// and returns the absolute position of the element's drop point, so that
// a left-to-right chain of elements can be drawn by feeding each result
// into the next call.
func (c *Canvas) Place(e schematic.Element, at vec.Vec2) (vec.Vec2, error) {
	shape, err := e.Shape()
	if err != nil {
		return vec.Vec2{}, err
	}
	err = c.Draw(shape, at)
	if err != nil {
		return vec.Vec2{}, err
	}
	return at.Add(shape.Drop()), nil
}

// Draw renders the shape with its local origin at the given position.
func (c *Canvas) Draw(shape *schematic.Shape, at vec.Vec2) error {
	b := c.B
	style := shape.Style()

	b.PushGraphicsState()
	b.SetStrokeColor(style.Stroke)
	b.SetLineWidth(style.LineWidth)

	var err error
	for _, seg := range shape.Segments() {
		switch seg := seg.(type) {
		case schematic.Line:
			c.drawLine(seg, at, style)
		case schematic.Arc:
			c.drawArc(seg, at)
		case schematic.Circle:
			c.setFill(seg.Fill, style)
			p := c.toPage(seg.Center, at)
			b.Circle(p.X, p.Y, seg.Radius*c.scale())
			c.paint(seg.Fill, false)
		case schematic.Polygon:
			c.setFill(seg.Fill, style)
			c.path(seg.Points, at)
			c.paint(seg.Fill, true)
		case schematic.Label:
			err = c.drawLabel(seg, at, style)
		}
		if err != nil {
			break
		}
	}

	b.PopGraphicsState()
	if err != nil {
		return err
	}
	return b.Err
}

// toPage converts a local-frame point to PDF coordinates.
func (c *Canvas) toPage(p, at vec.Vec2) vec.Vec2 {
	q := at.Add(p)
	return vec.Vec2{X: q.X * c.scale(), Y: q.Y * c.scale()}
}

func (c *Canvas) path(pts []vec.Vec2, at vec.Vec2) {
	for i, p := range pts {
		q := c.toPage(p, at)
		if i == 0 {
			c.B.MoveTo(q.X, q.Y)
		} else {
			c.B.LineTo(q.X, q.Y)
		}
	}
}

// setFill selects the fill colour for a following path.  Colour
// operators are not allowed once path construction has started, so this
// must run before the first MoveTo.
func (c *Canvas) setFill(fill schematic.Fill, style schematic.Style) {
	switch fill {
	case schematic.FillBody:
		c.B.SetFillColor(style.Body)
	case schematic.FillInk:
		c.B.SetFillColor(style.Stroke)
	}
}

// paint strokes the current path, filling it as requested.
func (c *Canvas) paint(fill schematic.Fill, closePath bool) {
	b := c.B
	switch {
	case fill == schematic.FillNone && closePath:
		b.CloseAndStroke()
	case fill == schematic.FillNone:
		b.Stroke()
	case closePath:
		b.CloseFillAndStroke()
	default:
		b.FillAndStroke()
	}
}

func (c *Canvas) drawLine(seg schematic.Line, at vec.Vec2, style schematic.Style) {
	b := c.B
	if seg.LineWidth > 0 {
		b.PushGraphicsState()
		b.SetLineWidth(seg.LineWidth)
	}
	c.path(seg.Points, at)
	b.Stroke()
	if seg.LineWidth > 0 {
		b.PopGraphicsState()
	}

	if seg.Arrow != nil && len(seg.Points) >= 2 {
		tip := c.toPage(seg.Points[len(seg.Points)-1], at)
		tail := c.toPage(seg.Points[len(seg.Points)-2], at)
		c.arrowHead(tip, tail, *seg.Arrow, style)
	}
}

// arrowHead fills a triangular head with its tip at tip, pointing away
// from tail.
func (c *Canvas) arrowHead(tip, tail vec.Vec2, a schematic.Arrow, style schematic.Style) {
	b := c.B

	phi := math.Atan2(tip.Y-tail.Y, tip.X-tail.X)
	sin, cos := math.Sin(phi), math.Cos(phi)
	l := a.Length * c.scale()
	w := a.Width * c.scale() / 2

	b.SetFillColor(style.Stroke)
	b.MoveTo(tip.X, tip.Y)
	b.LineTo(tip.X-l*cos-w*sin, tip.Y-l*sin+w*cos)
	b.LineTo(tip.X-l*cos+w*sin, tip.Y-l*sin-w*cos)
	b.ClosePath()
	b.Fill()
}

func (c *Canvas) drawArc(seg schematic.Arc, at vec.Vec2) {
	b := c.B
	center := c.toPage(seg.Center, at)
	rx := seg.Radii.X * c.scale()
	ry := seg.Radii.Y * c.scale()

	if rx == ry {
		b.MoveToArc(center.X, center.Y, rx, seg.Start, seg.Start+seg.Sweep)
		b.Stroke()
		return
	}

	// An elliptical arc is a squashed circular arc.  The pen is
	// distorted along with the path, which is acceptable for the
	// nearly-circular arcs the elements use.
	b.PushGraphicsState()
	b.Transform(matrix.Scale(rx/ry, 1).Mul(matrix.Translate(center.X, center.Y)))
	b.MoveToArc(0, 0, ry, seg.Start, seg.Start+seg.Sweep)
	b.Stroke()
	b.PopGraphicsState()
}

func (c *Canvas) drawLabel(seg schematic.Label, at vec.Vec2, style schematic.Style) error {
	if c.Font == nil {
		return fmt.Errorf("pdfdraw: no font for label %q", seg.Text)
	}

	size := defaultLabelSize
	if seg.Size > 0 {
		size = seg.Size * c.scale()
	}
	pos := c.toPage(seg.Pos, at)

	b := c.B
	b.SetFillColor(style.Stroke)
	b.TextBegin()
	b.TextSetFont(c.Font, size)
	gg := b.TextLayout(nil, seg.Text)
	// centre horizontally; the baseline shift approximates vertical
	// centring of the cap height
	b.TextFirstLine(pos.X-gg.TotalWidth()/2, pos.Y-0.35*size)
	b.TextShowGlyphs(gg)
	b.TextEnd()
	return b.Err
}
