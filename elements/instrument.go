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
	"math/rand"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/schematic"
	"seehuhn.de/go/schematic/waveform"
)

// Instrument chassis dimensions, shared by the spectrum analyzers, the
// waveform generator and the oscilloscope.
const (
	chassisWidth  = 1.85
	chassisHeight = 1.25

	screenX      = 0.2
	screenY      = -0.35
	screenWidth  = 1.1
	screenHeight = 0.7
	screenCorner = 0.25
)

// roundedRect adds the outline of an axis-aligned rectangle with
// rounded corners, as four lines joined by quarter arcs.
func roundedRect(bld *schematic.Builder, x0, y0, w, h, r float64) {
	x1, y1 := x0+w, y0+h
	corner := func(cx, cy, start float64) {
		bld.Add(schematic.Arc{
			Center: vec.Vec2{X: cx, Y: cy},
			Radii:  vec.Vec2{X: r, Y: r},
			Start:  start,
			Sweep:  math.Pi / 2,
		})
	}
	bld.Add(schematic.Line{Points: []vec.Vec2{{X: x0 + r, Y: y0}, {X: x1 - r, Y: y0}}})
	corner(x1-r, y0+r, -math.Pi/2)
	bld.Add(schematic.Line{Points: []vec.Vec2{{X: x1, Y: y0 + r}, {X: x1, Y: y1 - r}}})
	corner(x1-r, y1-r, 0)
	bld.Add(schematic.Line{Points: []vec.Vec2{{X: x1 - r, Y: y1}, {X: x0 + r, Y: y1}}})
	corner(x0+r, y1-r, math.Pi/2)
	bld.Add(schematic.Line{Points: []vec.Vec2{{X: x0, Y: y1 - r}, {X: x0, Y: y0 + r}}})
	corner(x0+r, y0+r, math.Pi)
}

// chassis returns a builder holding the instrument front panel: the
// outer block, the screen, a knob and three buttons.
func chassis(numN, numS, numE, numW int, style schematic.Style) (*schematic.Builder, error) {
	bld, err := schematic.Block{
		Width:    chassisWidth,
		Height:   chassisHeight,
		NumN:     numN,
		NumS:     numS,
		NumE:     numE,
		NumW:     numW,
		BodyFill: schematic.FillBody,
		Style:    style,
	}.Builder()
	if err != nil {
		return nil, err
	}

	roundedRect(bld, screenX, screenY, screenWidth, screenHeight, screenCorner)

	bld.Add(schematic.Circle{
		Center: vec.Vec2{X: 1.6, Y: 0.35},
		Radius: 0.1,
	})

	for i := range 3 {
		y := -0.5 + float64(i)*0.2
		bld.Add(schematic.Polygon{
			Points: []vec.Vec2{
				{X: 1.55, Y: y},
				{X: 1.65, Y: y},
				{X: 1.65, Y: y + 0.1},
				{X: 1.55, Y: y + 0.1},
			},
		})
	}

	return bld, nil
}

// onScreen maps a unit trace from the waveform package into screen
// coordinates.  The trace is scaled to yScale vertically and to 80% of
// the screen width horizontally, and shifted so that it starts at 10%
// of the screen width, at height yOrigin above the screen bottom.
func onScreen(pts []vec.Vec2, yScale, yOrigin float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = vec.Vec2{
			X: p.X*0.8*screenWidth + screenX + 0.1*screenWidth,
			Y: p.Y*yScale + screenY + yOrigin,
		}
	}
	return res
}

// Domain selects whether an instrument observes the optical or the
// electrical side of a link.
type Domain int

const (
	// OpticalDomain instruments are drawn in the [schematic.Optical]
	// palette.
	OpticalDomain Domain = iota

	// ElectricalDomain instruments are drawn in the [schematic.RF]
	// palette.
	ElectricalDomain
)

func (d Domain) defaultStyle() schematic.Style {
	if d == ElectricalDomain {
		return schematic.RF
	}
	return schematic.Optical
}

// SpectrumAnalyzer is a bench spectrum analyzer.  The optical variant
// shows a single carrier line on its screen, the electrical variant a
// three-line spectrum.
//
// Anchors: "N0", "S0", "E0", "W0" at the edge midpoints; more can be
// requested via the count fields.  The drop point is the last east
// anchor.
type SpectrumAnalyzer struct {
	// Domain selects the optical or the electrical variant.
	Domain Domain

	// Seed selects the noise floor drawn on the screen.  Elements
	// with equal seeds have identical geometry.
	Seed int64

	// NumN, NumS, NumE and NumW give the number of anchors on each
	// edge.  Zero values default to 1.
	NumN, NumS, NumE, NumW int

	// Style selects colours and line width.  Unset fields default to
	// the domain's palette.
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (s SpectrumAnalyzer) Shape() (*schematic.Shape, error) {
	bld, err := chassis(s.NumN, s.NumS, s.NumE, s.NumW,
		s.Style.Merged(s.Domain.defaultStyle()))
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(s.Seed))
	var trace []vec.Vec2
	var yScale float64
	switch s.Domain {
	case ElectricalDomain:
		peaks := []waveform.Peak{
			{Pos: 0.25, Amp: 0.5},
			{Pos: 0.5, Amp: 0.7},
			{Pos: 0.75, Amp: 0.5},
		}
		trace = waveform.Spectrum(200, peaks, 0.08, rng)
		yScale = 0.9 * screenHeight
	default:
		peaks := []waveform.Peak{{Pos: 0.5, Amp: 0.8}}
		trace = waveform.Spectrum(150, peaks, 0.2, rng)
		yScale = 0.8 * screenHeight
	}
	bld.Add(schematic.Line{Points: onScreen(trace, yScale, 0.15)})

	return bld.Finish(), nil
}

// WaveformGenerator is an arbitrary waveform generator, showing a
// filled sum-of-sines trace on its screen.
//
// Anchors: "N0", "S0", "E0", "W0" at the edge midpoints; more can be
// requested via the count fields.  The drop point is the last east
// anchor.
type WaveformGenerator struct {
	// Trace, if non-nil, replaces the built-in sum-of-sines trace.
	// Points use trace coordinates: x runs over [0, 1] across the
	// screen, y is in units of the screen's vertical scale.
	// [waveform.Samples] is a suitable source.
	Trace []vec.Vec2

	// NumN, NumS, NumE and NumW give the number of anchors on each
	// edge.  Zero values default to 1.
	NumN, NumS, NumE, NumW int

	// Style selects colours and line width, defaulting to
	// [schematic.RF].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (g WaveformGenerator) Shape() (*schematic.Shape, error) {
	bld, err := chassis(g.NumN, g.NumS, g.NumE, g.NumW,
		g.Style.Merged(schematic.RF))
	if err != nil {
		return nil, err
	}

	trace := g.Trace
	if trace == nil {
		trace = waveform.SumOfSines(500, []waveform.Harmonic{
			{Omega: 5 * math.Pi, Amp: 0.2},
			{Omega: 10 * math.Pi, Amp: 0.2},
			{Omega: 15 * math.Pi, Amp: 0.4},
		})
	}
	bld.Add(schematic.Polygon{
		Points: onScreen(trace, 0.45*screenHeight, screenHeight/2.1),
		Fill:   schematic.FillInk,
	})

	return bld.Finish(), nil
}

// Oscilloscope is a bench oscilloscope, showing a noisy sine trace on
// its screen.
//
// Anchors: "N0", "S0", "E0", "W0" at the edge midpoints; more can be
// requested via the count fields.  The drop point is the last east
// anchor.
type Oscilloscope struct {
	// Trace, if non-nil, replaces the synthetic noisy sine with a
	// caller-supplied trace, for example the digitized signal from
	// [waveform.Samples].  Points use trace coordinates: x runs over
	// [0, 1] across the screen, y is in units of the screen's
	// vertical scale.  Seed is ignored when Trace is set.
	Trace []vec.Vec2

	// Seed selects the trace noise drawn on the screen.  Elements
	// with equal seeds have identical geometry.
	Seed int64

	// NumN, NumS, NumE and NumW give the number of anchors on each
	// edge.  Zero values default to 1.
	NumN, NumS, NumE, NumW int

	// Style selects colours and line width.  The scope observes
	// whichever domain its probe is attached to, so there is no fixed
	// default; unset fields fall back to [schematic.Optical].
	Style schematic.Style
}

// Shape implements the [schematic.Element] interface.
func (o Oscilloscope) Shape() (*schematic.Shape, error) {
	bld, err := chassis(o.NumN, o.NumS, o.NumE, o.NumW,
		o.Style.Merged(schematic.Optical))
	if err != nil {
		return nil, err
	}

	trace := o.Trace
	if trace == nil {
		rng := rand.New(rand.NewSource(o.Seed))
		trace = waveform.NoisySine(120, 0.5, 0.3, rng)
	}
	bld.Add(schematic.Line{
		Points: onScreen(trace, 0.55*screenHeight, screenHeight/2),
	})

	return bld.Finish(), nil
}
