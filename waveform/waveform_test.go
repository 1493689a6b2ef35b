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

package waveform

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSpectrumPeaks(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	peaks := []Peak{{Pos: 0.5, Amp: 0.8}}
	pts := Spectrum(150, peaks, 0.2, rng)

	if len(pts) != 150 {
		t.Fatalf("got %d points, want 150", len(pts))
	}
	// the centre sample carries the full peak amplitude
	if y := pts[75].Y; y != 0.8 {
		t.Errorf("peak amplitude = %g, want 0.8", y)
	}
	// away from the peak, only the noise floor remains
	for _, i := range []int{0, 25, 149} {
		if y := math.Abs(pts[i].Y); y > 0.1 {
			t.Errorf("noise floor at sample %d is %g", i, y)
		}
	}
}

func TestSpectrumXAxis(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pts := Spectrum(200, nil, 0.1, rng)
	for i, p := range pts {
		if want := float64(i) / 200; p.X != want {
			t.Fatalf("sample %d at x=%g, want %g", i, p.X, want)
		}
	}
}

func TestNoisySineDeterminism(t *testing.T) {
	a := NoisySine(120, 0.5, 0.3, rand.New(rand.NewSource(7)))
	b := NoisySine(120, 0.5, 0.3, rand.New(rand.NewSource(7)))
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("traces with equal seeds differ:\n%s", d)
	}

	c := NoisySine(120, 0.5, 0.3, rand.New(rand.NewSource(8)))
	if d := cmp.Diff(a, c); d == "" {
		t.Error("traces with different seeds are identical")
	}
}

func TestNoisySineRange(t *testing.T) {
	pts := NoisySine(120, 0.5, 0.3, rand.New(rand.NewSource(1)))
	for _, p := range pts {
		if math.Abs(p.Y) > 0.5+0.15 {
			t.Errorf("sample at %v out of range", p)
		}
	}
}

func TestSumOfSines(t *testing.T) {
	harmonics := []Harmonic{
		{Omega: 5 * math.Pi, Amp: 0.2},
		{Omega: 10 * math.Pi, Amp: 0.2},
		{Omega: 15 * math.Pi, Amp: 0.4},
	}
	pts := SumOfSines(500, harmonics)
	if len(pts) != 500 {
		t.Fatalf("got %d points, want 500", len(pts))
	}
	if pts[0].Y != 0 {
		t.Errorf("trace does not start at zero: %g", pts[0].Y)
	}
	for i, p := range pts {
		t0 := float64(i) / 500
		want := 0.2*math.Sin(5*math.Pi*t0) +
			0.2*math.Sin(10*math.Pi*t0) +
			0.4*math.Sin(15*math.Pi*t0)
		if math.Abs(p.Y-want) > 1e-15 {
			t.Fatalf("sample %d is %g, want %g", i, p.Y, want)
		}
	}
}

func TestSamples(t *testing.T) {
	pts, err := Samples()
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) == 0 {
		t.Fatal("no samples")
	}
	for i, p := range pts {
		if p.X < 0 || p.X >= 1 {
			t.Errorf("sample %d at x=%g, want [0, 1)", i, p.X)
		}
		if i > 0 && p.X <= pts[i-1].X {
			t.Errorf("x values not increasing at sample %d", i)
		}
	}

	// callers may modify the returned slice
	pts[0].Y = 999
	again, err := Samples()
	if err != nil {
		t.Fatal(err)
	}
	if again[0].Y == 999 {
		t.Error("Samples returns shared storage")
	}
}
