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

package pdfdraw

import (
	"bytes"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/schematic"
	"seehuhn.de/go/schematic/elements"
)

func makePage(t *testing.T) (*document.Page, *Canvas) {
	t.Helper()

	buf := &bytes.Buffer{}
	page, err := document.WriteSinglePage(buf, document.A4, pdf.V2_0, nil)
	if err != nil {
		t.Fatal(err)
	}
	helvetica, err := standard.Helvetica.New()
	if err != nil {
		t.Fatal(err)
	}
	canvas := &Canvas{
		B:    page.Builder,
		Font: helvetica,
	}
	return page, canvas
}

func TestDrawCatalog(t *testing.T) {
	page, canvas := makePage(t)

	all := []schematic.Element{
		elements.Bend90{},
		elements.Bend180{},
		elements.Terminator{},
		elements.BraggGrating{},
		elements.Mux{NumW: 4},
		elements.Circulator{},
		elements.BeamSplitter{},
		elements.DotCoupler{},
		elements.RingCoupler{},
		elements.FiberSpool{},
		elements.PolarizationController{},
		elements.VariableAttenuator{},
		elements.PhaseModulator{},
		elements.MachZehnder{},
		elements.IQModulator{},
		elements.SpectrumAnalyzer{},
		elements.SpectrumAnalyzer{Domain: elements.ElectricalDomain},
		elements.WaveformGenerator{},
		elements.Oscilloscope{},
		elements.PowerMeter{},
		elements.Photodiode{},
		elements.LaserDiode{},
		elements.Filter{},
	}
	pos := vec.Vec2{X: 2, Y: 20}
	for _, elem := range all {
		_, err := canvas.Place(elem, pos)
		if err != nil {
			t.Fatalf("%T: %v", elem, err)
		}
		pos.Y -= 3
		if pos.Y < 2 {
			pos = vec.Vec2{X: pos.X + 4, Y: 20}
		}
	}

	err := page.Close()
	if err != nil {
		t.Fatal(err)
	}
}

// Filled paths need their fill colour set before path construction
// starts; colour operators inside a path are invalid.
func TestDrawFilledShapes(t *testing.T) {
	page, canvas := makePage(t)

	bld := schematic.NewBuilder(schematic.Optical)
	bld.Add(schematic.Polygon{
		Points: []vec.Vec2{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		Fill:   schematic.FillBody,
	})
	bld.Add(schematic.Circle{
		Center: vec.Vec2{X: 0.5, Y: 0.5},
		Radius: 0.25,
		Fill:   schematic.FillInk,
	})
	shape := bld.Finish()

	err := canvas.Draw(shape, vec.Vec2{X: 2, Y: 10})
	if err != nil {
		t.Fatalf("drawing filled shapes failed: %v", err)
	}

	err = page.Close()
	if err != nil {
		t.Fatal(err)
	}
}

func TestPlaceReturnsDrop(t *testing.T) {
	page, canvas := makePage(t)

	at := vec.Vec2{X: 3, Y: 10}
	drop, err := canvas.Place(elements.VariableAttenuator{}, at)
	if err != nil {
		t.Fatal(err)
	}
	want := vec.Vec2{X: 3.7, Y: 10}
	if drop != want {
		t.Errorf("drop = %v, want %v", drop, want)
	}

	err = page.Close()
	if err != nil {
		t.Fatal(err)
	}
}

func TestLabelNeedsFont(t *testing.T) {
	page, canvas := makePage(t)
	canvas.Font = nil

	_, err := canvas.Place(elements.BraggGrating{}, vec.Vec2{X: 2, Y: 10})
	if err == nil || !strings.Contains(err.Error(), "font") {
		t.Errorf("err = %v, want missing-font error", err)
	}

	// shapes without labels still draw
	_, err = canvas.Place(elements.Bend90{}, vec.Vec2{X: 2, Y: 5})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err = page.Close()
	if err != nil {
		t.Fatal(err)
	}
}

func TestDrawScale(t *testing.T) {
	page, canvas := makePage(t)
	canvas.Scale = 18

	bld := schematic.NewBuilder(schematic.Optical)
	bld.Add(schematic.Line{Points: []vec.Vec2{{}, {X: 1}}})
	shape := bld.Finish()

	err := canvas.Draw(shape, vec.Vec2{X: 1, Y: 1})
	if err != nil {
		t.Fatal(err)
	}

	err = page.Close()
	if err != nil {
		t.Fatal(err)
	}
}
