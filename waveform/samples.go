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
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"seehuhn.de/go/geom/vec"
)

// samples.bin holds (x, y) pairs of big-endian float64 values,
// a digitized damped sine.
//
//go:embed samples.bin
var samplesData []byte

var getSamples = sync.OnceValues(decodeSamples)

// Samples returns the built-in reference trace, for use on instrument
// screens where a recognizable measured signal is wanted.  The returned
// slice is a copy and can be modified by the caller.
func Samples() ([]vec.Vec2, error) {
	pts, err := getSamples()
	if err != nil {
		return nil, err
	}
	res := make([]vec.Vec2, len(pts))
	copy(res, pts)
	return res, nil
}

func decodeSamples() ([]vec.Vec2, error) {
	body := samplesData
	if len(body)%16 != 0 {
		return nil, fmt.Errorf("waveform: corrupt sample data (%d bytes)",
			len(body))
	}
	pts := make([]vec.Vec2, len(body)/16)
	for i := range pts {
		x := binary.BigEndian.Uint64(body[16*i:])
		y := binary.BigEndian.Uint64(body[16*i+8:])
		pts[i] = vec.Vec2{
			X: math.Float64frombits(x),
			Y: math.Float64frombits(y),
		}
	}
	return pts, nil
}
