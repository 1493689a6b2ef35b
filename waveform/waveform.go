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

// Package waveform generates the decorative traces shown on instrument
// screens.
//
// All generators return a polyline of n points with x coordinates i/n
// for i in 0..n-1 and unitless y values; callers scale and translate the
// polyline into screen coordinates.  Generators with a noise component
// take an explicit random source and are pure functions of their
// arguments, so that the same source state always yields the same trace.
package waveform

import (
	"math"
	"math/rand"

	"seehuhn.de/go/geom/vec"
)

// A Peak is a single spectral line in a [Spectrum] trace.
type Peak struct {
	Pos float64 // horizontal position as a fraction of the trace, in [0, 1)
	Amp float64 // peak amplitude
}

// Spectrum returns a spectrum trace of n points: a noise floor with a
// triangular line at each peak.  Peaks have a half-width of 5 samples;
// noise gives the amplitude of the uniform noise floor.
func Spectrum(n int, peaks []Peak, noise float64, rng *rand.Rand) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		var y float64
		for _, peak := range peaks {
			center := peak.Pos * float64(n)
			if dist := math.Abs(float64(i) - center); dist < 5 {
				y += peak.Amp * (1 - dist/5)
			} else {
				y += noise * (rng.Float64() - 0.5)
			}
		}
		pts[i] = vec.Vec2{X: float64(i) / float64(n), Y: y}
	}
	return pts
}

// NoisySine returns a single sine period of n points with amplitude amp,
// plus uniform noise of the given amplitude.
func NoisySine(n int, amp, noise float64, rng *rand.Rand) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		t := float64(i) / float64(n)
		pts[i] = vec.Vec2{
			X: t,
			Y: amp*math.Sin(2*math.Pi*t) + noise*(rng.Float64()-0.5),
		}
	}
	return pts
}

// A Harmonic is one sine component of a [SumOfSines] trace.
type Harmonic struct {
	Omega float64 // angular frequency over the unit interval
	Amp   float64 // amplitude
}

// SumOfSines returns a deterministic trace of n points,
// y = sum of Amp*sin(Omega*t) over the harmonics, for t in [0, 1).
func SumOfSines(n int, harmonics []Harmonic) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		t := float64(i) / float64(n)
		var y float64
		for _, h := range harmonics {
			y += h.Amp * math.Sin(h.Omega*t)
		}
		pts[i] = vec.Vec2{X: t, Y: y}
	}
	return pts
}
