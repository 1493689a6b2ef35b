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

// Package schematic provides the building blocks for optical and RF
// communications schematics.
//
// A schematic is composed of elements (bends, couplers, modulators,
// detectors, instruments).  Every element describes its geometry as a
// [Shape]: an ordered list of drawing primitives ([Line], [Arc], [Circle],
// [Polygon], [Label]) together with named anchor points, all given in a
// local coordinate frame whose origin is by convention the element's input
// port.  Shapes carry no position of their own; placing them on a page and
// connecting their anchors with wires is the business of the caller.
//
// Shapes are immutable once constructed.  The same shape value can be drawn
// any number of times, at different positions, without interference.
//
// Element geometry is defined in schematic units.  One unit roughly
// corresponds to the length of a short wire between two components; the
// [seehuhn.de/go/schematic/pdfdraw] package maps units to PDF points when
// drawing.
//
// The element catalog lives in [seehuhn.de/go/schematic/elements].
package schematic
