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

import "seehuhn.de/go/pdf/graphics/color"

// Style describes the colours and line width used to draw a shape.
//
// The zero value leaves every choice to the element, which substitutes its
// documented default palette.  Elements drawn in an optical signal path
// default to [Optical], electrical elements to [RF], and electro-optical
// elements to [Hybrid].
type Style struct {
	// Stroke is the colour used for outlines, text and ink fills.
	Stroke color.Color

	// Body is the colour used for body fills (the interior of element
	// outlines).
	Body color.Color

	// LineWidth is the stroke width in PDF points.
	LineWidth float64
}

// The default palettes.  Optical paths are drawn in a dark blue, electrical
// paths in a dark red, and electro-optical elements in purple, each on a
// white body.
var (
	Optical = Style{
		Stroke:    color.DeviceRGB{0x15 / 255.0, 0x4d / 255.0, 0x76 / 255.0},
		Body:      color.DeviceGray(1),
		LineWidth: 1,
	}
	RF = Style{
		Stroke:    color.DeviceRGB{0x8b / 255.0, 0, 0},
		Body:      color.DeviceGray(1),
		LineWidth: 1,
	}
	Hybrid = Style{
		Stroke:    color.DeviceRGB{0x66 / 255.0, 0x33 / 255.0, 0x99 / 255.0},
		Body:      color.DeviceGray(1),
		LineWidth: 1,
	}
)

// Merged fills unset fields of s from def and returns the result.
func (s Style) Merged(def Style) Style {
	if s.Stroke == nil {
		s.Stroke = def.Stroke
	}
	if s.Body == nil {
		s.Body = def.Body
	}
	if s.LineWidth == 0 {
		s.LineWidth = def.LineWidth
	}
	return s
}
