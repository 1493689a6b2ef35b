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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func TestBlockOutline(t *testing.T) {
	shape, err := Block{Width: 2, Height: 1}.Shape()
	if err != nil {
		t.Fatal(err)
	}

	segs := shape.Segments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	poly, ok := segs[0].(Polygon)
	if !ok {
		t.Fatalf("got %T, want Polygon", segs[0])
	}

	want := []vec.Vec2{
		{X: 0, Y: -0.5},
		{X: 2, Y: -0.5},
		{X: 2, Y: 0.5},
		{X: 0, Y: 0.5},
		{X: 0, Y: -0.5},
	}
	if d := cmp.Diff(poly.Points, want); d != "" {
		t.Errorf("outline differs (-got +want):\n%s", d)
	}
}

func TestBlockAnchorSpacing(t *testing.T) {
	type testCase struct {
		n    int
		want []float64 // anchor positions along an edge of length 1
	}
	cases := []testCase{
		{n: 1, want: []float64{0.5}},
		{n: 3, want: []float64{0.25, 0.5, 0.75}},
		{n: 4, want: []float64{0.2, 0.4, 0.6, 0.8}},
	}
	for _, c := range cases {
		shape, err := Block{
			Width:  1,
			Height: 1,
			NumN:   c.n,
			NumS:   c.n,
			NumE:   c.n,
			NumW:   c.n,
		}.Shape()
		if err != nil {
			t.Fatal(err)
		}
		for i, pos := range c.want {
			for _, edge := range []string{"N", "S", "E", "W"} {
				name := fmt.Sprintf("%s%d", edge, i)
				p, ok := shape.Anchor(name)
				if !ok {
					t.Fatalf("n=%d: anchor %s missing", c.n, name)
				}
				var got float64
				switch edge {
				case "N", "S": // numbered left to right
					got = p.X
				case "E", "W": // numbered top to bottom
					got = 0.5 - p.Y
				}
				if got != pos {
					t.Errorf("n=%d: anchor %s at %g, want %g",
						c.n, name, got, pos)
				}
			}
		}
	}
}

func TestBlockAnchorsOnBoundary(t *testing.T) {
	shape, err := Block{
		Width:  1.85,
		Height: 1.25,
		NumN:   2,
		NumS:   3,
		NumE:   4,
		NumW:   5,
	}.Shape()
	if err != nil {
		t.Fatal(err)
	}

	names := shape.AnchorNames()
	if len(names) != 2+3+4+5 {
		t.Fatalf("got %d anchors, want %d", len(names), 2+3+4+5)
	}
	for _, name := range names {
		p, _ := shape.Anchor(name)
		onNS := (p.Y == 1.25/2 || p.Y == -1.25/2) && p.X >= 0 && p.X <= 1.85
		onEW := (p.X == 0 || p.X == 1.85) && p.Y >= -1.25/2 && p.Y <= 1.25/2
		if !onNS && !onEW {
			t.Errorf("anchor %s at %v is not on the boundary", name, p)
		}
	}
}

func TestBlockDrop(t *testing.T) {
	for _, numE := range []int{1, 2, 3, 7} {
		shape, err := Block{Width: 1, Height: 1, NumE: numE}.Shape()
		if err != nil {
			t.Fatal(err)
		}
		want, ok := shape.Anchor(fmt.Sprintf("E%d", numE-1))
		if !ok {
			t.Fatalf("numE=%d: last east anchor missing", numE)
		}
		if got := shape.Drop(); got != want {
			t.Errorf("numE=%d: drop = %v, want %v", numE, got, want)
		}
	}
}

func TestBlockDegenerate(t *testing.T) {
	// A 0x0 block is allowed; it is used for dot-style couplers.
	shape, err := Block{}.Shape()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"N0", "S0", "E0", "W0"} {
		p, ok := shape.Anchor(name)
		if !ok {
			t.Fatalf("anchor %s missing", name)
		}
		if p != (vec.Vec2{}) {
			t.Errorf("anchor %s = %v, want origin", name, p)
		}
	}
	if shape.Drop() != (vec.Vec2{}) {
		t.Errorf("drop = %v, want origin", shape.Drop())
	}
}

func TestBlockInvalid(t *testing.T) {
	cases := []Block{
		{Width: -1, Height: 1},
		{Width: 1, Height: -1},
		{Width: 1, Height: 1, NumN: -1},
		{Width: 1, Height: 1, NumE: -2},
	}
	for i, b := range cases {
		_, err := b.Shape()
		var ipe *InvalidParameterError
		if !errors.As(err, &ipe) {
			t.Errorf("case %d: err = %v, want *InvalidParameterError", i, err)
		}
	}
}

func TestBlockIdempotent(t *testing.T) {
	b := Block{Width: 1.6, Height: 1, NumN: 2, NumS: 2, NumE: 3, NumW: 1}
	s1, err := b.Shape()
	if err != nil {
		t.Fatal(err)
	}
	s2, err := b.Shape()
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(s1.Segments(), s2.Segments()); d != "" {
		t.Errorf("segments differ:\n%s", d)
	}
	for _, name := range s1.AnchorNames() {
		p1, _ := s1.Anchor(name)
		p2, ok := s2.Anchor(name)
		if !ok || p1 != p2 {
			t.Errorf("anchor %s: %v != %v", name, p1, p2)
		}
	}
	if s1.Drop() != s2.Drop() {
		t.Errorf("drop: %v != %v", s1.Drop(), s2.Drop())
	}
}

func TestShapeBBox(t *testing.T) {
	bld := NewBuilder(Optical)
	bld.Add(Line{Points: []vec.Vec2{{X: -1, Y: 0}, {X: 2, Y: 0.5}}})
	bld.Add(Circle{Center: vec.Vec2{X: 0, Y: 2}, Radius: 0.5})
	shape := bld.Finish()

	bbox := shape.BBox()
	if bbox.LLx != -1 || bbox.LLy != 0 || bbox.URx != 2 || bbox.URy != 2.5 {
		t.Errorf("bbox = %v", bbox)
	}
}

func TestBuilderIsolation(t *testing.T) {
	bld := NewBuilder(Optical)
	bld.Add(Line{Points: []vec.Vec2{{}, {X: 1}}})
	bld.SetAnchor("in", vec.Vec2{})
	shape := bld.Finish()

	// further building must not leak into the finished shape
	bld.Add(Circle{Radius: 1})
	bld.SetAnchor("out", vec.Vec2{X: 1})

	if n := len(shape.Segments()); n != 1 {
		t.Errorf("got %d segments, want 1", n)
	}
	if _, ok := shape.Anchor("out"); ok {
		t.Error("anchor added after Finish is visible in shape")
	}
}

func TestStyleMerged(t *testing.T) {
	s := Style{LineWidth: 2}.Merged(Optical)
	if s.Stroke != Optical.Stroke || s.Body != Optical.Body {
		t.Error("unset colours not taken from default")
	}
	if s.LineWidth != 2 {
		t.Errorf("LineWidth = %g, want 2", s.LineWidth)
	}

	s = Style{}.Merged(RF)
	if s != RF {
		t.Errorf("zero style merges to %v, want %v", s, RF)
	}
}

func TestBBoxArc(t *testing.T) {
	bld := NewBuilder(Optical)
	bld.Add(Arc{Radii: vec.Vec2{X: 1, Y: 1}, Start: 0, Sweep: math.Pi / 2})
	bbox := bld.Finish().BBox()
	// arcs are bounded by their full ellipse
	if bbox.LLx != -1 || bbox.URx != 1 || bbox.LLy != -1 || bbox.URy != 1 {
		t.Errorf("bbox = %v", bbox)
	}
}
